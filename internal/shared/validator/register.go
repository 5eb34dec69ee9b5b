package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers the custom validators shared by every domain.
// Safe to call more than once.
func RegisterAll() error {
	var err error
	registerOnce.Do(func() {
		err = register()
	})
	return err
}

func register() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	// report json field names (adherentId) instead of Go names (AdherentID)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", ValidateNotBlank); err != nil {
		return fmt.Errorf("notblank validator 등록 실패: %w", err)
	}

	slog.Info("공통 Validator 등록 완료", "validators", "notblank")
	return nil
}
