/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparser

import (
	"math"
	"strconv"

	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/value"
)

// numberFirstDigit handles the first digit of a number (after an optional
// leading '-' already consumed), choosing between the "leading zero"
// state (which forbids a following digit) and ordinary integer
// accumulation.
func (p *BasicParser) numberFirstDigit(c byte) (bool, error) {
	p.mantissa = uint64(c - '0')
	if c == '0' {
		p.state = stNumberLeadingZero
	} else {
		p.state = stNumberInt
	}
	return true, nil
}

func (p *BasicParser) accumulateMantissa(c byte) (bool, error) {
	p.numText = append(p.numText, c)
	d := uint64(c - '0')
	if p.mantissa > (math.MaxUint64-d)/10 {
		p.mantissaOK = false
	} else {
		p.mantissa = p.mantissa*10 + d
	}
	return true, nil
}

func (p *BasicParser) accumulateExponent(c byte) (bool, error) {
	p.numText = append(p.numText, c)
	d := uint64(c - '0')
	const expBound = math.MaxUint64 / 10
	if p.exponent > expBound {
		p.exponentOK = false
	} else {
		p.exponent = p.exponent*10 + d
	}
	return true, nil
}

func (p *BasicParser) numberByte(c byte) (bool, error) {
	switch p.state {
	case stNumberSign:
		if !isDigit(c) {
			return true, newErr(value.ErrSyntax, "expected digit after '-'")
		}
		p.numText = append(p.numText, c)
		return p.numberFirstDigit(c)

	case stNumberLeadingZero, stNumberInt:
		switch {
		case isDigit(c):
			if p.state == stNumberLeadingZero {
				return true, newErr(value.ErrSyntax, "leading zero not allowed")
			}
			return p.accumulateMantissa(c)
		case c == '.':
			p.numText = append(p.numText, c)
			p.hasFrac = true
			p.state = stNumberFracStart
			return true, nil
		case c == 'e' || c == 'E':
			p.numText = append(p.numText, c)
			p.hasExp = true
			p.state = stNumberExpSign
			return true, nil
		default:
			return false, nil
		}

	case stNumberFracStart:
		if !isDigit(c) {
			return true, newErr(value.ErrSyntax, "expected digit after '.'")
		}
		p.state = stNumberFrac
		return p.accumulateMantissa(c)

	case stNumberFrac:
		switch {
		case isDigit(c):
			return p.accumulateMantissa(c)
		case c == 'e' || c == 'E':
			p.numText = append(p.numText, c)
			p.hasExp = true
			p.state = stNumberExpSign
			return true, nil
		default:
			return false, nil
		}

	case stNumberExpSign:
		if c == '+' || c == '-' {
			p.numText = append(p.numText, c)
			p.expNeg = c == '-'
			p.state = stNumberExpStart
			return true, nil
		}
		if isDigit(c) {
			p.state = stNumberExp
			return p.accumulateExponent(c)
		}
		return true, newErr(value.ErrSyntax, "expected digit or sign after exponent")

	case stNumberExpStart:
		if !isDigit(c) {
			return true, newErr(value.ErrSyntax, "expected digit after exponent sign")
		}
		p.state = stNumberExp
		return p.accumulateExponent(c)

	case stNumberExp:
		if isDigit(c) {
			return p.accumulateExponent(c)
		}
		return false, nil
	}
	return true, newErr(value.ErrSyntax, "internal: bad number state")
}

// finalizeNumber builds the accumulated digits into a number.Number and
// reports it to the handler. Called either when a non-numeric byte is
// encountered (without consuming it) or at WriteEOF.
func (p *BasicParser) finalizeNumber() error {
	if !p.mantissaOK {
		return newErr(value.ErrMantissaOverflow, "")
	}
	if !p.exponentOK {
		return newErr(value.ErrExponentOverflow, "")
	}

	var n number.Number
	if p.hasFrac || p.hasExp {
		f, err := strconv.ParseFloat(string(p.numText), 64)
		if err != nil {
			return newErr(value.ErrSyntax, "malformed number literal")
		}
		n = number.FromDouble(f)
	} else if p.neg {
		const minMantissa = uint64(math.MaxInt64) + 1
		if p.mantissa <= minMantissa {
			var iv int64
			if p.mantissa == minMantissa {
				iv = math.MinInt64
			} else {
				iv = -int64(p.mantissa)
			}
			n = number.FromInt64(iv)
		} else {
			n = number.FromDouble(-float64(p.mantissa))
		}
	} else if p.mantissa <= math.MaxInt64 {
		n = number.FromInt64(int64(p.mantissa))
	} else {
		n = number.FromUint64(p.mantissa)
	}

	if err := p.handler.OnNumber(n); err != nil {
		return err
	}
	return p.afterValue()
}
