package hygiene_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptrack/inputguard/pkg/hygiene"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text", input: "123 Main St", want: "123 Main St"},
		{name: "trims", input: "  123 Main St \n", want: "123 Main St"},
		{name: "script block", input: "<script>alert(1)</script>Hello", want: "Hello"},
		{name: "script block uppercase with attrs", input: "<SCRIPT type='text/javascript'>evil()</SCRIPT>ok", want: "ok"},
		{name: "multiline script", input: "a<script>\nline1\nline2\n</script>b", want: "ab"},
		{name: "markup chars", input: "Hello\"World&Test<>", want: "HelloWorldTest"},
		{name: "tags keep content", input: "<b>Bold</b> text", want: "Bold text"},
		{name: "unclosed script keeps body", input: "<script>alert(1)", want: "alert(1)"},
		{name: "apostrophe and ampersand", input: "O'Brien & Sons", want: "OBrien  Sons"},
		{name: "edge whitespace left by tags", input: "<p> padded </p>", want: "padded"},
		{name: "only markup", input: "<br/><hr>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hygiene.Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"  <script>x</script> <b>y</b>  ",
		"<<script>>alert(1)<</script>>",
		"a < b > c",
		"\"quoted\" & 'single'",
		"<scr<script>ipt>alert(1)</script>",
		"＜script＞ full width",
	}

	for _, in := range inputs {
		once := hygiene.Sanitize(in)
		assert.Equal(t, once, hygiene.Sanitize(once), "input %q", in)
		assert.NotContains(t, once, "<")
		assert.NotContains(t, once, ">")
		assert.NotContains(t, once, "&")
		assert.Equal(t, strings.TrimSpace(once), once)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	rules := hygiene.DefaultRules()

	tests := []struct {
		name    string
		input   string
		pattern hygiene.Pattern
		want    bool
	}{
		{name: "shipment id", input: "JOB001SHIP", pattern: rules.ShipmentID, want: true},
		{name: "shipment id lowercase", input: "job001ship", pattern: rules.ShipmentID, want: false},
		{name: "shipment id too short", input: "ABC12", pattern: rules.ShipmentID, want: false},
		{name: "shipment id too long", input: "ABCDEFGHIJKLM", pattern: rules.ShipmentID, want: false},
		{name: "shipment id with hyphen", input: "JOB-001", pattern: rules.ShipmentID, want: false},
		{name: "shipment id with hyphen at valid length", input: "JOB-001SHIP", pattern: rules.ShipmentID, want: false},
		{name: "address", input: "123 Main St, Springfield", pattern: rules.Address, want: true},
		{name: "address with markup", input: "<b>123 Main St</b>", pattern: rules.Address, want: true},
		{name: "address with hash", input: "123 Main St #5", pattern: rules.Address, want: false},
		{name: "address with no-break space", input: "123\u00a0Main St", pattern: rules.Address, want: true},
		{name: "address with vertical tab", input: "123\vMain", pattern: rules.Address, want: true},
		{name: "address with ideographic space", input: "123\u3000Main St", pattern: rules.Address, want: true},
		{name: "address with byte order mark", input: "123\ufeffMain St", pattern: rules.Address, want: true},
		{name: "description with no-break space", input: "Two\u00a0pallets (fragile)!", pattern: rules.Description, want: true},
		{name: "notes with line separator", input: "Ring twice\u2028then wait", pattern: rules.Notes, want: true},
		{name: "empty address", input: "", pattern: rules.Address, want: false},
		{name: "address at limit", input: strings.Repeat("a", hygiene.AddressMaxLen), pattern: rules.Address, want: true},
		{name: "address over limit", input: strings.Repeat("a", hygiene.AddressMaxLen+1), pattern: rules.Address, want: false},
		{name: "description punctuation", input: "Fragile! Handle with care (glass)?", pattern: rules.Description, want: true},
		{name: "empty notes", input: "", pattern: rules.Notes, want: true},
		{name: "notes over limit", input: strings.Repeat("n", hygiene.NotesMaxLen+1), pattern: rules.Notes, want: false},
		{name: "phone", input: "+15551234567", pattern: rules.Phone, want: true},
		{name: "phone leading zero", input: "0123456", pattern: rules.Phone, want: false},
		{name: "email", input: "user@example.com", pattern: rules.Email, want: true},
		{name: "email without tld", input: "user@example", pattern: rules.Email, want: false},
		{name: "email with no-break space", input: "us\u00a0er@example.com", pattern: rules.Email, want: false},
		{name: "zero pattern", input: "anything", pattern: hygiene.Pattern{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hygiene.Validate(tt.input, tt.pattern))
		})
	}
}

func TestDetectMaliciousContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "clean address", input: "123 Main St", want: false},
		{name: "clean description", input: "Fragile contents, handle with care", want: false},
		{name: "normal text", input: "Normal text", want: false},
		{name: "script xss", input: `<script>alert("xss")</script>`, want: true},
		{name: "javascript xss", input: `javascript:alert("xss")`, want: true},
		{name: "bare event handler", input: "onclick=alert(1)", want: true},
		{name: "event handler with line separator", input: "onclick\u2028=alert(1)", want: true},
		{name: "event handler with no-break space", input: "onclick\u00a0=alert(1)", want: true},
		{name: "event handler with vertical tab", input: "onclick\v=alert(1)", want: true},
		{name: "script tag", input: "<script>alert(1)</script>", want: true},
		{name: "script tag mixed case", input: "<ScRiPt src=x>", want: true},
		{name: "javascript scheme", input: "javascript:alert(1)", want: true},
		{name: "event handler", input: `<img src=x onerror=alert(1)>`, want: true},
		{name: "event handler with spaces", input: `<body onload = "x">`, want: true},
		{name: "data html", input: "data:text/html;base64,PHNjcmlwdD4=", want: true},
		{name: "vbscript", input: "VBScript:MsgBox", want: true},
		{name: "full width script", input: "＜script＞alert(1)", want: true},
		{name: "full width colon", input: "javascript：alert(1)", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hygiene.DetectMaliciousContent(tt.input))
		})
	}
}

func TestMatchedSignatures(t *testing.T) {
	t.Parallel()

	assert.Nil(t, hygiene.MatchedSignatures("123 Main St"))
	assert.Equal(t,
		[]hygiene.Signature{hygiene.SignatureEventHandler},
		hygiene.MatchedSignatures(`<img src=x onerror=alert(1)>`),
	)
	assert.Equal(t,
		[]hygiene.Signature{hygiene.SignatureScriptTag, hygiene.SignatureJavaScriptScheme},
		hygiene.MatchedSignatures(`<script>x</script><a href="javascript:y">`),
	)
	assert.Equal(t,
		[]hygiene.Signature{hygiene.SignatureDataHTML, hygiene.SignatureVBScriptScheme},
		hygiene.MatchedSignatures("vbscript:x data:text/html"),
	)
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		kind  hygiene.Kind
		want  string
	}{
		{name: "dashed phone", value: "+1-555-123-4567", kind: hygiene.KindPhone, want: "+1-XXX-XXX-XX67"},
		{name: "bare phone", value: "15551234567", kind: hygiene.KindPhone, want: "1-XXX-XXX-XX67"},
		{name: "phone inside text", value: "call +1-555-123-4567 now", kind: hygiene.KindPhone, want: "call +1-XXX-XXX-XX67 now"},
		{name: "short phone unchanged", value: "5551234", kind: hygiene.KindPhone, want: "5551234"},
		{name: "spaced phone unchanged", value: "+44 20 7946 0958", kind: hygiene.KindPhone, want: "+44 20 7946 0958"},
		{name: "email", value: "user@example.com", kind: hygiene.KindEmail, want: "uXXX@example.com"},
		{name: "single char local part", value: "a@b.co", kind: hygiene.KindEmail, want: "a@b.co"},
		{name: "multibyte local part", value: "josé@x.io", kind: hygiene.KindEmail, want: "jXXX@x.io"},
		{name: "not an email", value: "not-an-email", kind: hygiene.KindEmail, want: "not-an-email"},
		{name: "missing local part", value: "@example.com", kind: hygiene.KindEmail, want: "@example.com"},
		{name: "several at signs split at the first", value: "user@b@c.com", kind: hygiene.KindEmail, want: "uXXX@b@c.com"},
		{name: "several at signs short local part", value: "a@b@c.com", kind: hygiene.KindEmail, want: "a@b@c.com"},
		{name: "unknown kind", value: "123-45-6789", kind: hygiene.Kind("ssn"), want: "123-45-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hygiene.MaskSensitiveData(tt.value, tt.kind))
		})
	}
}

func TestMaskSensitiveData_HidesMiddleDigits(t *testing.T) {
	t.Parallel()

	masked := hygiene.MaskSensitiveData("+1-555-123-4567", hygiene.KindPhone)
	assert.Contains(t, masked, "XXX")
	assert.NotContains(t, masked, "555")
	assert.NotContains(t, masked, "123")
}

var idShape = regexp.MustCompile(`^[A-Z0-9]+$`)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	t.Run("default length", func(t *testing.T) {
		t.Parallel()
		id := hygiene.GenerateID(8)
		assert.Len(t, id, 8)
		assert.Regexp(t, idShape, id)
		assert.Len(t, hygiene.NewID(), hygiene.DefaultIDLength)
	})

	t.Run("non-positive length", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, hygiene.GenerateID(0))
		assert.Empty(t, hygiene.GenerateID(-3))
	})

	t.Run("long ids", func(t *testing.T) {
		t.Parallel()
		id := hygiene.GenerateID(100)
		assert.Len(t, id, 100)
		assert.Regexp(t, idShape, id)
	})

	t.Run("unique", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			id := hygiene.NewID()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("covers alphabet", func(t *testing.T) {
		t.Parallel()
		counts := make(map[rune]int)
		for _, r := range hygiene.GenerateID(36 * 1000) {
			counts[r]++
		}
		assert.Len(t, counts, 36)
	})
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, ok := hygiene.ParseField("Shipment-ID")
	assert.True(t, ok)
	assert.Equal(t, hygiene.FieldShipmentID, f)

	f, ok = hygiene.ParseField(" notes ")
	assert.True(t, ok)
	assert.Equal(t, hygiene.FieldNotes, f)

	_, ok = hygiene.ParseField("password")
	assert.False(t, ok)
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules := hygiene.DefaultRules()
	for _, f := range hygiene.Fields() {
		p, ok := rules.Pattern(f)
		require.True(t, ok, f)
		assert.NotEmpty(t, p.Name())
		assert.NotNil(t, p.Regexp())
		assert.Equal(t, f == hygiene.FieldNotes, p.Optional(), f)
	}

	assert.Equal(t, hygiene.AddressMaxLen, rules.Address.MaxLen())
	assert.Equal(t, hygiene.DescriptionMaxLen, rules.Description.MaxLen())
	assert.Equal(t, hygiene.NotesMaxLen, rules.Notes.MaxLen())
	assert.Equal(t, hygiene.ShipmentIDMinLen, rules.ShipmentID.MinLen())
	assert.Equal(t, hygiene.ShipmentIDMaxLen, rules.ShipmentID.MaxLen())
	assert.Equal(t, `^[A-Z0-9]{6,12}$`, rules.ShipmentID.String())

	assert.NotEmpty(t, rules.Messages.InvalidInput)
	assert.NotEmpty(t, rules.Messages.Unauthorized)
	assert.NotEmpty(t, rules.Messages.ServerError)
	assert.NotEmpty(t, rules.Messages.NetworkError)
	assert.NotEmpty(t, rules.Messages.ValidationFailed)

	_, ok := hygiene.Rules{}.Pattern(hygiene.FieldAddress)
	assert.False(t, ok)
}
