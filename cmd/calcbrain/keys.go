package main

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// key is a single key press scanned from a line of input.
type key struct {
	text string
	kind keyKind
	pos  int
}

func (k key) String() string {
	return k.kind.String() + ":" + k.text + "@" + strconv.Itoa(k.pos)
}

type keyKind int

const (
	keyNone keyKind = iota
	// keyNum is a number, typed digit by digit.
	keyNum
	// keyName is a variable, constant, operator, or command name.
	keyName
	// keyOp is an operator glyph.
	keyOp
	// keyStore stores the display into the variable named by text.
	keyStore
)

func (k keyKind) String() string {
	switch k {
	case keyNone:
		return "None"
	case keyNum:
		return "Num"
	case keyName:
		return "Name"
	case keyOp:
		return "Op"
	case keyStore:
		return "Store"
	}
	return "keyKind(" + strconv.Itoa(int(k)) + ")"
}

// opKeys contains the runes which are operator keys on their own.
const opKeys = "+-*/×÷−√±"

// storeKeys contain the runes which begin a store key, e.g. →M.
const storeKeys = "→>"

type scanner struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func scan(src io.RuneScanner) *scanner {
	return &scanner{src: src, rune: 1}
}

// scanKeys scans an entire line into keys.
func scanKeys(line string) ([]key, error) {
	s := scan(strings.NewReader(line))
	var r []key
	for {
		k, err := s.next()
		if err == io.EOF {
			return r, nil
		}
		if err != nil {
			return r, err
		}
		r = append(r, k)
	}
}

func (s *scanner) readRune() (rune, error) {
	r, sz, err := s.src.ReadRune()
	if sz > 0 {
		s.rune++
	}
	return r, err
}

func (s *scanner) unreadRune() {
	if err := s.src.UnreadRune(); err != nil {
		panic(err)
	}
	s.rune--
}

// next scans the next key. At the end of input, the result is io.EOF.
func (s *scanner) next() (key, error) {
	defer s.buf.Reset()
	k := key{pos: s.rune}
	for {
		r, err := s.readRune()
		if err != nil {
			return k, err
		}
		switch {
		case unicode.IsSpace(r):
			k.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			s.unreadRune()
			if err := s.scanNum(); err != nil {
				return k, err
			}
			k.text = s.buf.String()
			k.kind = keyNum
			return k, nil
		case r == '_', unicode.IsLetter(r):
			s.unreadRune()
			if err := s.scanIdent(); err != nil {
				return k, err
			}
			k.text = s.buf.String()
			k.kind = keyName
			return k, nil
		case strings.ContainsRune(storeKeys, r):
			if err := s.scanIdent(); err != nil {
				return k, err
			}
			if s.buf.Len() == 0 {
				s.buf.WriteRune(r)
				return k, s.error("store")
			}
			k.text = s.buf.String()
			k.kind = keyStore
			return k, nil
		case strings.ContainsRune(opKeys, r):
			k.text = string(r)
			k.kind = keyOp
			return k, nil
		default:
			// Write the rune so that it shows up in the error message.
			s.buf.WriteRune(r)
			return k, s.error("")
		}
	}
}

func (s *scanner) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			s.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// A sign anywhere but right after an exponent marker is an
			// operator key.
			if !le {
				s.unreadRune()
				break
			}
			le = false
			s.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(opKeys+storeKeys, r) {
			s.unreadRune()
			break
		}
		s.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return s.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return s.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return s.error("number")
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return s.error("number")
	}
	return nil
}

// scanIdent scans letters, digits, and underscores. It may scan nothing.
func (s *scanner) scanIdent() error {
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			s.buf.WriteRune(r)
		default:
			s.unreadRune()
			return nil
		}
	}
}

func (s *scanner) error(kind string) error {
	return &KeyError{
		Text: s.buf.String(),
		Kind: kind,
		Col:  s.rune,
	}
}

// KeyError indicates input that is not a key.
type KeyError struct {
	// Text is the key the scanner was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of key the scanner was scanning. This may be "number",
	// "store", or the empty string if a key kind hadn't been decided.
	Kind string
	// Col is the number of runes scanned up to and including this error.
	Col int
}

func (err *KeyError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid key at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " key at " + pos + ": " + err.Text
}
