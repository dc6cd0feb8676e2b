package messages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/shiptrack/inputguard/pkg/logger"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// DefaultLanguage is used when a requested language has no messages.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var embedded embed.FS

// Catalog resolves message keys to user-facing text. It is read-only after
// New returns and safe for concurrent use.
type Catalog struct {
	messages    map[string]map[string]any
	defaultLang string
	logger      *slog.Logger

	source fs.FS
	dir    string

	matcher    language.Matcher
	matchLangs []string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the requested one is missing.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithSource loads *.yaml / *.yml files from dir in fsys instead of the
// embedded English catalog.
func WithSource(fsys fs.FS, dir string) Option {
	return func(c *Catalog) {
		if fsys != nil {
			c.source = fsys
			c.dir = dir
		}
	}
}

// WithLogger sets the logger used to report missing keys.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// New loads the catalog. Files for the same language are merged at the
// top-level section; a later file (in lexical order) replaces a section an
// earlier one defined.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:    make(map[string]map[string]any),
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
		source:      embedded,
		dir:         "locales",
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.load(ctx); err != nil {
		return nil, err
	}
	c.buildMatcher()

	c.logger.DebugContext(ctx, "message catalog loaded",
		logger.Component("messages"),
		slog.Any("languages", c.Languages()),
	)
	return c, nil
}

func (c *Catalog) load(ctx context.Context) error {
	entries, err := fs.ReadDir(c.source, c.dir)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrLoadingCancelled, err)
		}

		content, err := fs.ReadFile(c.source, path.Join(c.dir, name))
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parseYAML(ctx, content)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for lang, tree := range parsed {
			if existing, ok := c.messages[lang]; ok {
				maps.Copy(existing, tree)
				continue
			}
			c.messages[lang] = tree
		}
	}

	if len(c.messages) == 0 {
		return ErrNoMessages
	}
	return nil
}

// buildMatcher prepares Match. The default language goes first so that it
// is what the matcher reports when nothing fits.
func (c *Catalog) buildMatcher() {
	c.matchLangs = append(c.matchLangs, c.defaultLang)
	for _, lang := range c.Languages() {
		if lang != c.defaultLang {
			c.matchLangs = append(c.matchLangs, lang)
		}
	}

	tags := make([]language.Tag, len(c.matchLangs))
	for i, lang := range c.matchLangs {
		tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(tags)
}

// Match returns the loaded language that best fits prefs, given as a
// language tag or an Accept-Language list such as "de-CH,de;q=0.9,en;q=0.5".
// It returns the default language when nothing fits or prefs is malformed.
func (c *Catalog) Match(prefs string) string {
	tags, _, err := language.ParseAcceptLanguage(prefs)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.matchLangs[idx]
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Has reports whether key resolves to a string in lang.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.lookup(lang, key)
	return ok
}

// T returns the message for key in lang, falling back to the default
// language and finally to key itself. args are name/value pairs that fill
// %{name} placeholders:
//
//	c.T("en", "login.password.too_short", "min", "6")
func (c *Catalog) T(lang, key string, args ...string) string {
	return substitute(c.resolve(lang, key, key), pairs(args))
}

// Render returns the localized message for a validation failure. When the
// error's key is unknown its own Message is used.
func (c *Catalog) Render(lang string, e validator.ValidationError) string {
	params := make(map[string]string, len(e.TranslationValues))
	for k, v := range e.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	return substitute(c.resolve(lang, e.TranslationKey, e.Message), params)
}

// RenderAll renders every entry of errs keyed by field. A field with
// several failures keeps the first.
func (c *Catalog) RenderAll(lang string, errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, seen := out[e.Field]; seen {
			continue
		}
		out[e.Field] = c.Render(lang, e)
	}
	return out
}

func (c *Catalog) resolve(lang, key, fallback string) string {
	if s, ok := c.lookup(lang, key); ok {
		return s
	}
	if lang != c.defaultLang {
		if s, ok := c.lookup(c.defaultLang, key); ok {
			return s
		}
	}
	c.logger.Debug("message not found", slog.String("lang", lang), slog.String("key", key))
	return fallback
}

// lookup walks a dot-separated key through the nested message tree.
func (c *Catalog) lookup(lang, key string) (string, bool) {
	current, ok := c.messages[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute fills %{name} placeholders; unknown names are left as is.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs turns key, value, key, value... into a map. A trailing odd
// argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
