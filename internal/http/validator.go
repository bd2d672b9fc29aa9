package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs presence checks over a request body struct and
// returns one human-readable message naming the missing fields, or "" when
// the struct is valid. Only the `required` tag is in play; anything deeper
// than presence/type is out of scope for this service.
func ValidateStruct(s any) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}

	var fields []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		name := fieldErr.Field()
		fields = append(fields, strings.ToLower(name[:1])+name[1:])
	}
	switch len(fields) {
	case 0:
		return "invalid request body"
	case 1:
		return fmt.Sprintf("%s is required", fields[0])
	default:
		return fmt.Sprintf("%s are required", strings.Join(fields, " and "))
	}
}
