// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// mergeLayers merges partial configs into a new value. Earlier layers take
// precedence: a field is taken from a later layer only while it is still
// unset in the result.
//
// Pointers are not dereferenced, so an explicit zero (e.g. PreserveState set
// to false) counts as set. Maps of the types listed in wholeMaps are taken
// from the first layer that sets them and never merged key by key.
func mergeLayers[T any](layers ...*T) (*T, error) {
	result := new(T)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		seedWholeMaps(reflect.ValueOf(result).Elem(), reflect.ValueOf(layer).Elem())
		if err := mergo.Merge(result, layer, mergo.WithoutDereference, mergo.WithTransformers(wholeMaps{})); err != nil {
			return result, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return result, nil
}

// MergeOptions merges option sets, earlier ones winning per field. It is used
// to lay command-line options over an options file.
func MergeOptions(layers ...*Options) (*Options, error) {
	return mergeLayers(layers...)
}

func isWholeMap(typ reflect.Type) bool {
	switch typ {
	case reflect.TypeOf((*Headers)(nil)).Elem(), reflect.TypeOf((*Dictionary)(nil)).Elem(), reflect.TypeOf((*Settings)(nil)).Elem():
		return true
	}
	return false
}

// seedWholeMaps hands every whole map still unset in dst the map of src as
// is. mergo would otherwise build a fresh map entry by entry for a nil dst,
// dropping nil values on the way.
func seedWholeMaps(dst, src reflect.Value) {
	if dst.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < dst.NumField(); i++ {
		field := dst.Type().Field(i)
		if !field.IsExported() {
			continue
		}

		df, sf := dst.Field(i), src.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			seedWholeMaps(df, sf)
		case isWholeMap(field.Type) && df.IsNil() && !sf.IsNil():
			df.Set(sf)
		}
	}
}

type wholeMaps struct{}

// Transformer keeps a whole map that is already set in dst. mergo consults it
// only for a non-nil dst; seedWholeMaps covers the nil case.
func (wholeMaps) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if !isWholeMap(typ) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		return nil
	}
}
