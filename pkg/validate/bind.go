package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindStringMap assigns flat string values onto a struct's fields,
// keyed by json tag (field name when untagged). Unmatched keys are
// ignored; parameters carry strings and anything richer belongs to
// validation.
func bindStringMap(values map[string]string, dst any) error {
	dstValue := reflect.ValueOf(dst)
	if dstValue.Kind() != reflect.Ptr || dstValue.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer")
	}
	dstElem := dstValue.Elem()
	if dstElem.Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a pointer to a struct")
	}

	t := dstElem.Type()
	for i := 0; i < dstElem.NumField(); i++ {
		field := t.Field(i)
		fieldValue := dstElem.Field(i)
		if !fieldValue.CanSet() {
			continue
		}

		if field.Anonymous {
			if fieldValue.Kind() == reflect.Struct {
				if err := bindStringMap(values, fieldValue.Addr().Interface()); err != nil {
					return err
				}
			}
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "" {
			tag = field.Name
		} else if comma := strings.IndexByte(tag, ','); comma >= 0 {
			tag = tag[:comma]
		}

		value, ok := values[tag]
		if !ok {
			continue
		}
		if err := setField(fieldValue, value); err != nil {
			return fmt.Errorf("error setting field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.Ptr:
		if value == "" {
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setScalar(field.Elem(), value)
	case reflect.Slice:
		// Multi-segment captures arrive joined on "/".
		parts := strings.Split(value, "/")
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, part := range parts {
			if err := setScalar(slice.Index(i), part); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	default:
		return setScalar(field, value)
	}
}

func setScalar(field reflect.Value, value string) error {
	if value == "" {
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(uintValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolValue)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}
