package catalog

import "bookreview/internal/entity"

// Seed returns the startup catalog. The service exposes no create/delete
// routes for books, so this fixture is the full book population for the
// process lifetime.
func Seed() map[string]entity.Book {
	return map[string]entity.Book{
		"9780451524935": {Title: "1984", Author: "George Orwell"},
		"9780061120084": {Title: "To Kill a Mockingbird", Author: "Harper Lee"},
		"9780743273565": {Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		"9780141439518": {Title: "Pride and Prejudice", Author: "Jane Austen"},
		"9780060850524": {Title: "Brave New World", Author: "Aldous Huxley"},
		"9780547928227": {Title: "The Hobbit", Author: "J.R.R. Tolkien"},
		"9781451673319": {Title: "Fahrenheit 451", Author: "Ray Bradbury"},
		"9780486282114": {Title: "Frankenstein", Author: "Mary Shelley"},
		"9780679720201": {Title: "The Stranger", Author: "Albert Camus"},
		"9780140449136": {Title: "Crime and Punishment", Author: "Fyodor Dostoevsky"},
	}
}
