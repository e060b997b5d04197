package models

import (
	"reflect"
	"strings"
)

type Field struct {
	Key   string
	Value any
}

// Fields lists the requirement fields by their json name in declaration order.
func (r Requirements) Fields() []Field {
	value := reflect.ValueOf(r)
	fields := make([]Field, 0, value.NumField())

	for i := 0; i < value.NumField(); i++ {
		key, _, _ := strings.Cut(value.Type().Field(i).Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		fields = append(fields, Field{Key: key, Value: value.Field(i).Interface()})
	}

	return fields
}

// Values is Fields keyed by name.
func (r Requirements) Values() map[string]any {
	values := make(map[string]any)
	for _, field := range r.Fields() {
		values[field.Key] = field.Value
	}
	return values
}
