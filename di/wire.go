/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package di

import (
	"github.com/google/wire"
)

// ProviderSet is the Wire provider set for this module's dependencies.
// Include this set in your wire.Build() call to automatically wire the
// value/parser/serializer factories.
//
// Example:
//
//	func InitializeService() (*Service, error) {
//	    wire.Build(
//	        di.ProviderSet,
//	        NewService,
//	    )
//	    return nil, nil
//	}
var ProviderSet = wire.NewSet(
	NewValueFactory,
	wire.Bind(new(ValueFactory), new(*DefaultValueFactory)),

	NewParserFactory,
	wire.Bind(new(ParserFactory), new(*DefaultParserFactory)),

	NewSerializerFactory,
	wire.Bind(new(SerializerFactory), new(*DefaultSerializerFactory)),
)
