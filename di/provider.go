/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package di provides dependency injection support for this module. It
// defines standard interfaces and providers for integration with Go DI
// frameworks such as Google Wire.
//
// Example usage with Google Wire:
//
//	// wire.go
//	//go:build wireinject
//	// +build wireinject
//
//	package main
//
//	import (
//	    "github.com/google/wire"
//	    "github.com/kcenon/jsonvalue/di"
//	)
//
//	func InitializeApp() (*App, error) {
//	    wire.Build(di.ProviderSet, NewApp)
//	    return nil, nil
//	}
package di

import (
	"github.com/kcenon/jsonvalue/domparser"
	"github.com/kcenon/jsonvalue/serializer"
	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

// ValueFactory defines the interface for constructing Values and their
// allocator handles. It allows for easy mocking in tests and provides a
// standard abstraction for value construction across the application.
type ValueFactory interface {
	// NewHandle returns a handle bound to the process-wide default
	// storage resource.
	NewHandle() storage.Handle

	// NewObject returns an empty object Value bound to h.
	NewObject(h storage.Handle) value.Value

	// NewArray returns an empty array Value bound to h.
	NewArray(h storage.Handle) value.Value
}

// DefaultValueFactory is the default implementation of ValueFactory.
type DefaultValueFactory struct{}

// NewValueFactory creates a new ValueFactory instance. This is the
// provider function for dependency injection frameworks.
func NewValueFactory() ValueFactory {
	return &DefaultValueFactory{}
}

// NewHandle implements ValueFactory.
func (f *DefaultValueFactory) NewHandle() storage.Handle {
	return storage.NewDefaultHandle()
}

// NewObject implements ValueFactory.
func (f *DefaultValueFactory) NewObject(h storage.Handle) value.Value {
	return value.FromObject(value.NewObject(h))
}

// NewArray implements ValueFactory.
func (f *DefaultValueFactory) NewArray(h storage.Handle) value.Value {
	return value.FromArray(value.NewArray(h))
}

// ParserFactory defines the interface for constructing DOM parsers.
type ParserFactory interface {
	// NewParser returns a Parser ready to receive bytes.
	NewParser(opts ...domparser.Option) *domparser.Parser
}

// DefaultParserFactory is the default implementation of ParserFactory.
type DefaultParserFactory struct{}

// NewParserFactory creates a new ParserFactory instance. This is the
// provider function for dependency injection frameworks.
func NewParserFactory() ParserFactory {
	return &DefaultParserFactory{}
}

// NewParser implements ParserFactory.
func (f *DefaultParserFactory) NewParser(opts ...domparser.Option) *domparser.Parser {
	return domparser.New(opts...)
}

// SerializerFactory defines the interface for constructing serializers.
type SerializerFactory interface {
	// NewSerializer returns a Serializer over root.
	NewSerializer(root value.Value) *serializer.Serializer
}

// DefaultSerializerFactory is the default implementation of SerializerFactory.
type DefaultSerializerFactory struct{}

// NewSerializerFactory creates a new SerializerFactory instance. This is
// the provider function for dependency injection frameworks.
func NewSerializerFactory() SerializerFactory {
	return &DefaultSerializerFactory{}
}

// NewSerializer implements SerializerFactory.
func (f *DefaultSerializerFactory) NewSerializer(root value.Value) *serializer.Serializer {
	return serializer.New(root)
}
