package handlers

import (
	"time"

	"github.com/caixaflow/cash_flow_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// dateonly validates a YYYY-MM-DD string. Transaction dates are calendar
// dates, so anything with a time or zone component is rejected at binding.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(dto.DateLayout, fl.Field().String())
			return err == nil
		})
	}
}
