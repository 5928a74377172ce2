package dto

import (
	"reflect"
	"regexp"
	"strings"

	"wallet-governance/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	xfpRe        = regexp.MustCompile(`^[0-9a-fA-F]{8}$`)
	decimalRe    = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("xfp", validateXFP)
		_ = v.RegisterValidation("decimal_amount", validateDecimal)
		_ = v.RegisterValidation("wallet_role", validateWalletRole)
		_ = v.RegisterValidation("dummy_tx_type", validateDummyTxType)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateXFP accepts a master key fingerprint: 8 hex digits.
func validateXFP(fl validator.FieldLevel) bool {
	return xfpRe.MatchString(fl.Field().String())
}

// validateDecimal accepts a non-negative decimal string such as "0.05".
func validateDecimal(fl validator.FieldLevel) bool {
	return decimalRe.MatchString(fl.Field().String())
}

func validateWalletRole(fl validator.FieldLevel) bool {
	return domain.ParseWalletRole(fl.Field().String()) != domain.RoleNone
}

func validateDummyTxType(fl validator.FieldLevel) bool {
	return domain.ParseDummyTransactionType(fl.Field().String()) != domain.DummyTxNone
}

// TrimStruct trims surrounding whitespace from every exported string field
// (including *string and []string) of a struct pointer. Opaque fields such
// as payloads are left alone by callers that skip them.
func TrimStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			switch elem := f.Elem(); elem.Kind() {
			case reflect.String:
				elem.SetString(strings.TrimSpace(elem.String()))
			case reflect.Struct:
				trimFields(elem)
			}
		case reflect.Slice:
			for j := 0; j < f.Len(); j++ {
				switch e := f.Index(j); e.Kind() {
				case reflect.String:
					e.SetString(strings.TrimSpace(e.String()))
				case reflect.Struct:
					trimFields(e)
				}
			}
		case reflect.Struct:
			trimFields(f)
		}
	}
}
