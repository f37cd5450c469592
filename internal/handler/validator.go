package handler

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Trans is the global translator used by HandleParamError.
var Trans ut.Translator

// telPattern: 10-11 digits, no separators.
var telPattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// InitTrans configures gin's validator engine: json tag names in error
// messages, Japanese default translations (the application's user
// facing language), the custom tel rule and message overrides for the
// rules whose stock translations read poorly on the form.
func InitTrans(locale string) (err error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("binding.Validator.Engine() is not *validator.Validate")
	}

	// Error messages should name json fields, not Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	if err = v.RegisterValidation("tel", func(fl validator.FieldLevel) bool {
		return telPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	jaT := ja.New()
	enT := en.New()
	uni := ut.New(enT, jaT, enT)

	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	switch locale {
	case "ja":
		err = ja_translations.RegisterDefaultTranslations(v, Trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	if err != nil {
		return err
	}

	for tag, msg := range map[string]string{
		"tel":      "{0}は10桁から11桁の数字で入力してください",
		"datetime": "{0}の形式が正しくありません",
		"oneof":    "{0}の値が不正です",
	} {
		if err = registerTranslation(v, tag, msg); err != nil {
			return err
		}
	}
	return nil
}

func registerTranslation(v *validator.Validate, tag, msg string) error {
	return v.RegisterTranslation(tag, Trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

// RemoveTopStruct strips the struct name prefix ("StoreTagRequest.name"
// -> "name") from translated field keys.
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}
