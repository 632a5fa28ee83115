/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package argtab

type parser struct {
	table *Table
	errs  *ParseErrors
	args  []string
}

func (p *parser) run() {
	for p.parseOne() {
	}
}

func (p *parser) parseOne() bool {
	if len(p.args) == 0 {
		return false
	}
	s := p.args[0]
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	numMinuses := 1
	if s[1] == '-' {
		numMinuses++
		if len(s) == 2 { // "--" terminates the options
			p.args = p.args[1:]
			return false
		}
	}
	name := s[numMinuses:]
	if name[0] == '-' || name[0] == '=' {
		p.errs.add(nil, ErrUnknownOption, s)
		p.args = p.args[1:]
		return true
	}
	long := numMinuses == 2

	// If single dash, handle each rune in the name as a separate
	// option, except for the last one which can be handled normally
	// since it may have a following argument.
	if !long {
		i := 0
		for ; i < len(name)-1 && name[i+1] != '='; i++ {
			p.scanOne(string(name[i]), false, false, "", false)
		}
		name = name[i:]
	}

	// it's an option. does it have an inline =value?
	p.args = p.args[1:]
	hasValue := false
	value := ""
	for i := 1; i < len(name); i++ { // equals cannot be first
		if name[i] == '=' {
			value = name[i+1:]
			hasValue = true
			name = name[0:i]
			break
		}
	}

	p.scanOne(name, long, hasValue, value, true)
	return true
}

// scanOne dispatches one recognized occurrence to its descriptor.
// Failures accumulate in p.errs rather than stopping the pass, so one
// run reports every problem on the command line.
func (p *parser) scanOne(name string, long bool, hasValue bool, value string, canLookNext bool) {
	spelled := "-" + name
	if long {
		spelled = "--" + name
	}

	opt, ok := p.table.triggers[name]
	if !ok {
		p.errs.add(nil, ErrUnknownOption, spelled)
		return
	}
	hdr := opt.Hdr()

	var vp *string
	switch {
	case hasValue:
		vp = &value
	case !hdr.HasValue || hdr.OptionalValue:
		// Valueless flags never take a value; optional-value options
		// only take one in the --name=value form.
		vp = nil
	case canLookNext && len(p.args) > 0:
		value, p.args = p.args[0], p.args[1:]
		vp = &value
	default:
		p.errs.add(nil, ErrMissingArg, spelled)
		return
	}

	p.table.trace("scan", "option", spelled, "hasValue", vp != nil)
	if kind := opt.Scan(vp); kind != ErrNone {
		text := ""
		if vp != nil {
			text = *vp
		}
		p.errs.add(opt, kind, text)
	}
}
