/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparser

import "github.com/kcenon/jsonvalue/value"

func (p *BasicParser) literalByte(c byte) (bool, error) {
	text := literalText[p.lit]
	if p.litPos >= len(text) {
		return false, nil
	}
	if c != text[p.litPos] {
		return true, newErr(value.ErrSyntax, "invalid literal")
	}
	p.litPos++
	if p.litPos == len(text) {
		return true, p.finalizeLiteral()
	}
	return true, nil
}

func (p *BasicParser) finalizeLiteral() error {
	text := literalText[p.lit]
	if p.litPos != len(text) {
		return newErr(value.ErrSyntax, "truncated literal")
	}
	var err error
	switch p.lit {
	case literalTrue:
		err = p.handler.OnBool(true)
	case literalFalse:
		err = p.handler.OnBool(false)
	case literalNull:
		err = p.handler.OnNull()
	}
	if err != nil {
		return err
	}
	return p.afterValue()
}
