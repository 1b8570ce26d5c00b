package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstringMatcher(t *testing.T) {
	m, err := newSubstringMatcher([]string{"bank of america", "chase", "golden1", "paypal"}, AlnumOnly, true)
	require.NoError(t, err)

	tests := []struct {
		name  string
		text  string
		entry string
		found bool
	}{
		{"plain", "pleaseverifyyourbankofamericaaccount", "bank of america", true},
		{"single substitution", "bank0famerica", "bank of america", true},
		{"mixed substitutions", "b4nk0famer1ca", "bank of america", true},
		{"entry with digit", "golden1alert", "golden1", true},
		{"entry with digit, leet form", "9olden1alert", "golden1", true},
		{"l to 1 substitution", "paypa1", "paypal", true},
		{"digits only don't spell a name", "call7144000", "", false},
		{"no match", "yourpackageisready", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := m.match(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.entry, entry)
		})
	}
}

func TestSubstringMatcher_NoFold(t *testing.T) {
	m, err := newSubstringMatcher([]string{"bank of america"}, AlnumOnly, false)
	require.NoError(t, err)
	assert.Nil(t, m.folded)

	_, ok := m.match("bank0famerica")
	assert.True(t, ok, "single substitution is matched by variants")
	_, ok = m.match("b4nk0famer1ca")
	assert.False(t, ok, "mixed substitutions need folding")
}

func TestSubstringMatcher_AlphaOnly(t *testing.T) {
	m, err := newSubstringMatcher([]string{"dearcustomer"}, AlphaOnly, false)
	require.NoError(t, err)
	for k := range m.rawIdx {
		assert.Equal(t, Normalize(k, AlphaOnly), k, "alpha-only patterns have no digits")
	}
	_, ok := m.match("dearcustomer")
	assert.True(t, ok)
	_, ok = m.match("darcustomr")
	assert.False(t, ok, "leet digits are dropped in alpha-only text, not read as letters")
}

func TestSubstringMatcher_EmptyEntry(t *testing.T) {
	_, err := newSubstringMatcher([]string{"chase", "---"}, AlnumOnly, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entry "---" is empty in alnum-only form`)
}

func TestSubstringMatcher_NoEntries(t *testing.T) {
	m, err := newSubstringMatcher(nil, AlnumOnly, true)
	require.NoError(t, err)
	_, ok := m.match("anything")
	assert.False(t, ok)
}

func TestDomainMatcher(t *testing.T) {
	m, err := newDomainMatcher([]string{".info", ".ru", ".netfly.app", ".net", ".web.app"})
	require.NoError(t, err)

	tests := []struct {
		text   string
		suffix string
		found  bool
	}{
		{"visit http://example.ru/login", ".ru", true},
		{"see example.info", ".info", true},
		{"more information at example.com", "", false},
		{"the run is over", "", false},
		{"go to site.netfly.app now", ".netfly.app", true},
		{"go to site.net now", ".net", true},
		{"go to site.network", "", false},
		{"app at foo.web.app", ".web.app", true},
		{"a lone .ru", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			suffix, ok := m.match(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestIPv4Re(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"server at 192.168.1.5 now", "192.168.1.5"},
		{"http://10.0.0.1/login", "10.0.0.1"},
		{"255.255.255.255", "255.255.255.255"},
		{"0.0.0.0", "0.0.0.0"},
		{"256.1.1.1", ""},
		{"1.2.3", ""},
		{"version 1.2.3a.4", ""},
		{"call 555.123.4567", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, ipv4Re.FindString(tt.text))
		})
	}
}
