package handler

import (
	"errors"
	"net/http"
	"reflect"

	"tindahan/internal/apierror"
	"tindahan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondServiceError maps domain errors to HTTP status codes. Anything
// unrecognized is logged through the gin error chain and reported as a 500
// without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		dupItemErr    *service.DuplicateItemError
		dupOrderErr   *service.DuplicateOrderError
		paymentErr    *service.InsufficientPaymentError
		transitionErr *service.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{
			validationErr.Field: validationErr.Reason,
		}))
	case errors.As(err, &dupItemErr), errors.As(err, &dupOrderErr), errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &paymentErr):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Not found"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
