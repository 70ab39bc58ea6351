// File: registry.go
// Title: Verb Registry
// Description: Registry of named verbs with aliases, unique-prefix
//              abbreviations and arity checking. Calls are dispatched with an
//              explicit Env; nothing is read from globals.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-20
//
// Change History:
// - 2025-01-25 v0.1.0: Initial command registry
// - 2025-08-20 v0.2.0: Reworked into a verb registry for scalar conversions

package verbs

import (
	"sort"
	"strings"
	"sync"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
	mdwlog "github.com/msto63/tabfun/foundation/core/log"
)

// Variadic marks a Definition without an upper argument bound
const Variadic = -1

// Func implements a verb. Arity is checked before it runs.
type Func func(env *Env, args []string) (string, error)

// Definition describes a verb
type Definition struct {
	Name        string   // Canonical name (e.g. "parse_date")
	Description string   // One-line description
	Usage       string   // Argument synopsis (e.g. "value [format]")
	Aliases     []string // Alternative names
	MinArgs     int      // Minimum argument count
	MaxArgs     int      // Maximum argument count or Variadic
	Lenient     bool     // Never fails on malformed values
	Fn          Func     // Implementation
}

// Options configures a Registry
type Options struct {
	Logger              *mdwlog.Logger
	EnableAbbreviations bool
	SkipBuiltins        bool
}

// Registry maps verb names and aliases to definitions
type Registry struct {
	verbs   map[string]*Definition
	aliases map[string]string
	logger  *mdwlog.Logger
	mutex   sync.RWMutex
	options Options
}

// New creates a registry holding the builtin verbs unless
// opts.SkipBuiltins is set
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	r := &Registry{
		verbs:   make(map[string]*Definition),
		aliases: make(map[string]string),
		logger:  opts.Logger.WithField("component", "verb-registry"),
		options: opts,
	}

	if !opts.SkipBuiltins {
		for _, def := range builtins() {
			if err := r.Register(def); err != nil {
				return nil, mdwerrors.OperationFailed("verbs", "registerBuiltins", err)
			}
		}
	}

	r.logger.Info("verb registry initialized", mdwlog.Fields{
		"verbCount":           len(r.verbs),
		"aliasCount":          len(r.aliases),
		"enableAbbreviations": opts.EnableAbbreviations,
	})

	return r, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds def under its name and aliases
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return mdwerrors.InvalidInput("verbs", "register", nil, "a verb definition")
	}
	name := normalize(def.Name)
	if name == "" {
		return mdwerrors.InvalidInput("verbs", "register", def.Name, "a non-empty verb name")
	}
	if def.Fn == nil {
		return mdwerrors.InvalidInput("verbs", "register", name, "a verb implementation")
	}
	if def.MinArgs < 0 || (def.MaxArgs != Variadic && def.MaxArgs < def.MinArgs) {
		return mdwerrors.InvalidInput("verbs", "register", name, "a valid argument range")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.taken(name) {
		return mdwerrors.InvalidInput("verbs", "register", name, "an unregistered verb name")
	}
	aliases := make([]string, 0, len(def.Aliases))
	for _, a := range def.Aliases {
		alias := normalize(a)
		if alias == "" || alias == name || r.taken(alias) {
			return mdwerrors.InvalidInput("verbs", "register", a, "an unregistered alias")
		}
		aliases = append(aliases, alias)
	}

	def.Name = name
	def.Aliases = aliases
	r.verbs[name] = def
	for _, alias := range aliases {
		r.aliases[alias] = name
	}

	r.logger.Debug("verb registered", mdwlog.Fields{
		"verb":    name,
		"aliases": aliases,
		"lenient": def.Lenient,
	})

	return nil
}

func (r *Registry) taken(name string) bool {
	_, verb := r.verbs[name]
	_, alias := r.aliases[name]
	return verb || alias
}

// RegisterAlias adds alias for the registered verb name
func (r *Registry) RegisterAlias(alias, name string) error {
	alias, name = normalize(alias), normalize(name)
	if alias == "" {
		return mdwerrors.InvalidInput("verbs", "registerAlias", alias, "a non-empty alias")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	def, ok := r.verbs[r.resolve(name)]
	if !ok {
		return mdwerrors.VerbsUnknown(name)
	}
	if r.taken(alias) {
		return mdwerrors.InvalidInput("verbs", "registerAlias", alias, "an unregistered alias")
	}

	r.aliases[alias] = def.Name
	def.Aliases = append(def.Aliases, alias)

	r.logger.Debug("verb alias registered", mdwlog.Fields{
		"alias": alias,
		"verb":  def.Name,
	})

	return nil
}

// resolve maps an alias or unique abbreviation to a verb name. Callers hold
// the mutex.
func (r *Registry) resolve(name string) string {
	if _, ok := r.verbs[name]; ok {
		return name
	}
	if target, ok := r.aliases[name]; ok {
		return target
	}
	if !r.options.EnableAbbreviations || name == "" {
		return name
	}

	match := ""
	for verb := range r.verbs {
		if strings.HasPrefix(verb, name) {
			if match != "" {
				return name
			}
			match = verb
		}
	}
	if match == "" {
		return name
	}
	return match
}

// Resolve returns the canonical verb name for name, or name itself when
// nothing matches
func (r *Registry) Resolve(name string) string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.resolve(normalize(name))
}

// Has reports whether name resolves to a verb
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Lookup returns the definition name resolves to
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.verbs[r.resolve(normalize(name))]
	if !ok {
		return nil, mdwerrors.VerbsUnknown(name)
	}
	return def, nil
}

// Names returns the sorted canonical verb names
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}

	return aliases
}

// Call runs the verb name with args in env. A nil env uses DefaultEnv.
func (r *Registry) Call(env *Env, name string, args ...string) (string, error) {
	def, err := r.Lookup(name)
	if err != nil {
		r.logger.Debug("unknown verb", mdwlog.Fields{"verb": name})
		return "", err
	}

	if len(args) < def.MinArgs || (def.MaxArgs != Variadic && len(args) > def.MaxArgs) {
		return "", mdwerrors.VerbsArity(def.Name, len(args), def.MinArgs, def.MaxArgs)
	}

	if env == nil {
		env = DefaultEnv()
	}

	result, err := def.Fn(env, args)
	if err != nil {
		env.logger().DebugWithErr("verb failed", err, mdwlog.Fields{
			"verb": def.Name,
			"args": args,
		})
		return "", err
	}

	env.logger().Trace("verb called", mdwlog.Fields{
		"verb":   def.Name,
		"result": result,
	})
	return result, nil
}
