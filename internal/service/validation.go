package service

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/model"
	"catalog/internal/notification"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateFields runs the struct tags of e and records one notification per
// failing field. It reports whether e passed.
func validateFields(n *notification.Notifier, e any) bool {
	err := validate.Struct(e)
	if err == nil {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		n.Notify(err.Error())
		return false
	}
	for _, fe := range fieldErrs {
		n.Notify(fieldMessage(fe))
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The field %s is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must have at most %s characters.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The field %s has an invalid value.", fe.Field())
	default:
		return fmt.Sprintf("The field %s is invalid.", fe.Field())
	}
}

func validateSupplier(n *notification.Notifier, s *model.Supplier) bool {
	if !validateFields(n, s) {
		return false
	}
	if !model.ValidDocument(s.Kind, s.Document) {
		n.Notifyf("The document is not valid for the supplier kind %q.", s.Kind.String())
		return false
	}
	return true
}

func validateProduct(n *notification.Notifier, p *model.Product) bool {
	ok := validateFields(n, p)
	if p.Value.IsNegative() {
		n.Notify("The value must not be negative.")
		ok = false
	}
	return ok
}

// publish copies the call's notifications into the request notifier, if
// the caller attached one, and returns them as the call's result.
func publish(ctx context.Context, n *notification.Notifier) notification.Result {
	notification.FromContext(ctx).Merge(n)
	return n.Result()
}
