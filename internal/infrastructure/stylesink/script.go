package stylesink

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/readably/internal/application/port"
)

var _ port.StyleSink = (*Script)(nil)

const scriptName = "readably.user.js"

const scriptHeader = `// ==UserScript==
// @name        readably
// @description Accessibility style overrides
// @match       *://*/*
// @run-at      document-start
// @grant       none
// ==/UserScript==
`

const scriptPrelude = `(function () {
  "use strict";
  function upsert(id, css) {
    var el = document.getElementById(id);
    if (!el) {
      el = document.createElement("style");
      el.id = id;
      (document.head || document.documentElement).appendChild(el);
    }
    el.textContent = css;
  }
  function remove(id) {
    var el = document.getElementById(id);
    if (el) {
      el.remove();
    }
  }
`

const scriptEpilogue = "})();\n"

type scriptOp struct {
	id     string
	css    string
	remove bool
}

// Script records style operations and replays them as a browser userscript.
// Only the last operation per id is kept.
type Script struct {
	mu  sync.Mutex
	ops []scriptOp
}

// NewScript returns an empty script sink.
func NewScript() *Script {
	return &Script{}
}

func (s *Script) Upsert(_ context.Context, id, css string) error {
	s.record(scriptOp{id: id, css: css})
	return nil
}

func (s *Script) Remove(_ context.Context, id string) error {
	s.record(scriptOp{id: id, remove: true})
	return nil
}

func (s *Script) record(op scriptOp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = slices.DeleteFunc(s.ops, func(o scriptOp) bool { return o.id == op.id })
	s.ops = append(s.ops, op)
}

// Source returns the userscript text and checks that it compiles.
func (s *Script) Source() (string, error) {
	s.mu.Lock()
	ops := slices.Clone(s.ops)
	s.mu.Unlock()

	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString(scriptPrelude)
	for _, op := range ops {
		id, err := jsString(op.id)
		if err != nil {
			return "", err
		}
		if op.remove {
			fmt.Fprintf(&b, "  remove(%s);\n", id)
			continue
		}
		css, err := jsString(op.css)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  upsert(%s, %s);\n", id, css)
	}
	b.WriteString(scriptEpilogue)

	src := b.String()
	if _, err := sobek.Compile(scriptName, src, true); err != nil {
		return "", fmt.Errorf("generated script does not compile: %w", err)
	}
	return src, nil
}

func jsString(s string) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode %q: %w", s, err)
	}
	return string(data), nil
}
