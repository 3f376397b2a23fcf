package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Reportar el nombre JSON del campo, que es lo que ve el front end.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseTier(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("companytype", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseCompanyType(fl.Field().String())
			return ok
		})
		validate = v
	})
	return validate
}

// Validate aplica las reglas de los tags `validate` y traduce el resultado a *domain.ValidationError.
func Validate(s interface{}) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar %T: %w", s, err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "tier":
		return "debe ser Standard o Administrator"
	case "companytype":
		return "debe ser MicroEntrepreneur, SimplifiedRegime, PresumedProfit o RealProfit"
	default:
		return "es inválido"
	}
}
