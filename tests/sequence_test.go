package tests

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/mdo/pkg/monad"
	"github.com/ib-77/mdo/pkg/monad/chain"
	"github.com/ib-77/mdo/pkg/monad/do"
	"github.com/ib-77/mdo/pkg/monad/maybe"
)

// lookup turns map access into a maybe value.
func lookup(settings map[string]string, key string) maybe.Maybe[string] {
	if v, ok := settings[key]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[string]()
}

func parsePort(s string) maybe.Maybe[int] {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return maybe.Nothing[int]()
	}
	return maybe.Just(n)
}

// TestAddressFromSettings assembles a dial address from a settings map with
// a do-block; every missing or malformed entry collapses the whole block.
func TestAddressFromSettings(t *testing.T) {
	settings := map[string]string{
		"host": "db.local",
		"port": "5432",
	}
	in := maybe.Instance()

	block := do.NewBlock(
		do.Bound{Pat: do.Var("host"), Expr: func(do.Scope) any {
			return lookup(settings, "host")
		}},
		do.Bound{Pat: do.Var("raw"), Expr: func(do.Scope) any {
			return lookup(settings, "port")
		}},
		do.Bound{Pat: do.Var("port"), Expr: func(s do.Scope) any {
			return parsePort(s["raw"].(string))
		}},
		do.Return{Expr: func(s do.Scope) any {
			return fmt.Sprintf("%s:%d", s["host"], s["port"])
		}},
	)

	m, err := do.Run(block, in)
	assert.NoError(t, err)

	addr, ok := in.Extract(m)
	assert.True(t, ok)
	assert.Equal(t, "db.local:5432", addr)
}

func TestAddressMissingEntryShortCircuits(t *testing.T) {
	settings := map[string]string{
		"host": "db.local",
		// no port entry
	}
	in := maybe.Instance()
	formatted := false

	block := do.NewBlock(
		do.Bound{Pat: do.Var("host"), Expr: func(do.Scope) any {
			return lookup(settings, "host")
		}},
		do.Bound{Pat: do.Var("raw"), Expr: func(do.Scope) any {
			return lookup(settings, "port")
		}},
		do.Bound{Pat: do.Var("port"), Expr: func(s do.Scope) any {
			return parsePort(s["raw"].(string))
		}},
		do.Return{Expr: func(s do.Scope) any {
			formatted = true
			return fmt.Sprintf("%s:%d", s["host"], s["port"])
		}},
	)

	m, err := do.Run(block, in)
	assert.NoError(t, err)

	_, ok := in.Extract(m)
	assert.False(t, ok)
	assert.False(t, formatted, "formatting must not run past a missing entry")
}

// TestPortScrub filters a raw list of port candidates down to the valid
// ones, preserving order.
func TestPortScrub(t *testing.T) {
	raw := []string{"80", "not-a-port", "8080", "-1", "443"}

	ports := maybe.MapMaybes(parsePort, raw)
	assert.Equal(t, []int{80, 8080, 443}, ports)

	first := maybe.FromList(ports)
	assert.Equal(t, 80, maybe.FromJust(first))
}

// TestChainFallback resolves a setting through a chain with a default.
func TestChainFallback(t *testing.T) {
	settings := map[string]string{}
	in := maybe.Instance()

	addr := chain.Start(in, lookup(settings, "host")).
		Map(func(v any) any { return v.(string) + ":80" }).
		Or(chain.FromValue(in, "localhost:80")).
		Finally(
			func(v any) any { return v },
			func() any { return "" },
		)

	assert.Equal(t, "localhost:80", addr)
}

// TestContractCombinatorsOverSettings exercises the contract-generic
// combinators against the maybe instance.
func TestContractCombinatorsOverSettings(t *testing.T) {
	in := maybe.Instance()

	candidates := []any{
		parsePort("22"),
		parsePort("bad"),
		parsePort("8022"),
	}
	assert.Equal(t, []any{22, 8022}, monad.CatValues(in, candidates))

	doubled := monad.Map(in, maybe.Just(21), func(v any) any { return v.(int) * 2 })
	v, ok := in.Extract(doubled)
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}
