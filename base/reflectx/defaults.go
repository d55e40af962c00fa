// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a collection of helpers for the reflect
// package in the Go standard library.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
)

// NonPointerValue returns a non-pointer version of the given value.
// If it encounters a nil pointer, it returns the nil pointer instead
// of an invalid value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` struct field tag values. Struct fields without a tag are
// traversed recursively. Basic kinds (bool, ints, uints, floats,
// strings) and types with a SetString method are supported in tags.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, got %v", v.Kind())
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				if err := setFromDefaultTags(fv); err != nil {
					return err
				}
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %q: %w", f.Name, err)
		}
	}
	return nil
}

// SetFromString sets the given settable value from the given string,
// parsing it according to the kind of the value. Addressable values
// with a SetString(string) error method, such as enums, use that method.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if ss, ok := v.Addr().Interface().(interface{ SetString(string) error }); ok {
			return ss.SetString(s)
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
