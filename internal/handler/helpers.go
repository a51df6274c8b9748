package handler

import (
	"errors"
	"net/http"

	"catalog/internal/apierror"
	"catalog/internal/notification"
	"catalog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string)
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// paramID parses the :id route parameter, answering 400 when it is not a uuid.
func paramID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return uuid.Nil, false
	}
	return id, true
}

// rejected writes the response for a mutation that did not go through and
// reports whether it did so. Storage failures are handed to ErrorHandler so
// their details stay in the log.
func rejected(c *gin.Context, res notification.Result, err error) bool {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Resource not found"))
	case errors.Is(err, repository.ErrDuplicateKey), errors.Is(err, repository.ErrConstraintViolation):
		// a concurrent request changed the data between the service's checks and the commit
		c.JSON(http.StatusConflict, apierror.New("The resource conflicts with the current state of the data"))
	case err != nil:
		_ = c.Error(err)
	case !res.Valid():
		c.JSON(http.StatusUnprocessableEntity, apierror.NewViolations(res.Violations))
	default:
		return false
	}
	return true
}
