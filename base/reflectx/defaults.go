// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for setting
// struct fields from their `default:` tags.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of the fields of the given struct
// pointer based on their `default:` field tags, recursing into nested
// struct fields that have no tag. Array and slice defaults are given
// as space-separated elements, e.g. `default:"0.4 0.4 0.5 1"`.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("SetFromDefaultTags: need a non-nil pointer to a struct, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: need a pointer to a struct, not %T", obj)
	}
	return setStructDefaults(val)
}

func setStructDefaults(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				if err := setStructDefaults(fv); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s.%s: %w", typ.Name(), f.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("SetFromDefaultTags: %v", errs)
	}
	return nil
}

// SetFromString sets the given settable value from its string
// representation, for basic kinds and arrays / slices of them.
func SetFromString(v reflect.Value, s string) error {
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
	case reflect.Array:
		flds := strings.Fields(s)
		if len(flds) != v.Len() {
			return fmt.Errorf("need %d elements, got %d in %q", v.Len(), len(flds), s)
		}
		for i, fs := range flds {
			if err := SetFromString(v.Index(i), fs); err != nil {
				return err
			}
		}
	case reflect.Slice:
		flds := strings.Fields(s)
		sl := reflect.MakeSlice(v.Type(), len(flds), len(flds))
		for i, fs := range flds {
			if err := SetFromString(sl.Index(i), fs); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
