package vcconfig

// RuleTag names a reduction rule that can occupy one of the 16 configurable
// rule-schedule slots ("CONFIG_RULE <i> <OPT_...>" in a configuration file).
type RuleTag string

// The full rule-tag vocabulary accepted by CONFIG_RULE lines.
const (
	RuleNone        RuleTag = "NONE"
	RuleDeg1        RuleTag = "DEG_1"
	RuleDeg2        RuleTag = "DEG_2"
	RuleDeg3        RuleTag = "DEG_3"
	RuleDom         RuleTag = "DOM"
	RuleUnconf      RuleTag = "UNCONF"
	RuleCN          RuleTag = "CN"
	RuleLP          RuleTag = "LP"
	RuleDeg12       RuleTag = "DEG_12"
	RuleUnconfCombo RuleTag = "UNCONF_COMBO"
	RuleUndeg3      RuleTag = "UNDEG_3"
)

// numRuleSlots is the fixed width of the rule schedule.
const numRuleSlots = 16

// Config is the solver's full set of tunables: which rules run and in what
// order, which bounds are enabled and at what cutoffs, and the branching
// strategy. A zero Config is not meaningful; always start from Default().
type Config struct {
	// Branching.
	BranchingV2 bool
	Components  bool
	Mirror      bool

	// Bounds.
	LPBoundEnabled     bool
	CliqueBoundEnabled bool
	LPBoundCutoff      float64

	// Rules is the ordered rule schedule; exactly numRuleSlots entries,
	// applied in order by the reducer each fixpoint round.
	Rules [numRuleSlots]RuleTag

	// Clique-neighborhood gates.
	CNCheck1Enabled bool
	CNCheck1MinDeg  int
	CNCheck1MaxDeg  int
	CNCheck2Enabled bool
	CNCheck2Cutoff  float64
	CNCheck2RelaxN  int
	CNCheck2LargeN  int
	CNCheck2LargeK  int

	// Degree-3 gadget gates.
	Deg3Cutoff1 int
	Deg3Cutoff2 int

	// Clique-cover bound knobs.
	CliqueBoundIter        int
	CliqueBoundAscend      bool
	CliqueBoundMixed       bool
	CliqueBoundShuffleDist float64
	CliqueBoundShufflePct  int

	// Unconfined-rule gates.
	UnconfCutoff int
	UnconfMaxDeg int
}

// defaultRules is the out-of-the-box schedule: the combined degree-1/2
// sweep, the unconfined rule with its built-in degree-1/2 chaser, then the
// clique-neighborhood rule. The remaining rules (domination, the degree-3
// and undeg-3 gadgets, the LP pseudo-rule) cost more than they save on
// typical instances and only run when a configuration file asks for them.
var defaultRules = [numRuleSlots]RuleTag{
	RuleDeg12, RuleUnconfCombo, RuleCN,
	RuleNone, RuleNone, RuleNone, RuleNone, RuleNone,
	RuleNone, RuleNone, RuleNone, RuleNone, RuleNone,
	RuleNone, RuleNone, RuleNone,
}

// Default returns the solver's compiled-in defaults, then applies opts in
// order. It is the only supported way to construct a Config.
func Default(opts ...Option) *Config {
	cfg := &Config{
		BranchingV2:        true,
		Components:         true,
		Mirror:             true,
		LPBoundEnabled:     true,
		CliqueBoundEnabled: true,
		LPBoundCutoff:      1e7,
		Rules:              defaultRules,

		CNCheck1Enabled: true,
		CNCheck1MinDeg:  1,
		CNCheck1MaxDeg:  20,
		CNCheck2Enabled: true,
		CNCheck2Cutoff:  1000,
		CNCheck2RelaxN:  12,
		CNCheck2LargeN:  20,
		CNCheck2LargeK:  3,

		Deg3Cutoff1: 30,
		Deg3Cutoff2: 15,

		CliqueBoundIter:        1,
		CliqueBoundAscend:      false,
		CliqueBoundMixed:       false,
		CliqueBoundShuffleDist: 0.3,
		CliqueBoundShufflePct:  50,

		UnconfCutoff: 50000,
		UnconfMaxDeg: 5000,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option customizes a Config field. Option constructors never panic;
// out-of-range values are the caller's responsibility (the config-file
// loader validates before constructing one).
type Option func(cfg *Config)

// WithRules replaces the rule schedule outright. Entries beyond the first
// numRuleSlots are ignored; missing entries are padded with RuleNone.
func WithRules(rules ...RuleTag) Option {
	return func(cfg *Config) {
		for i := 0; i < numRuleSlots; i++ {
			cfg.Rules[i] = RuleNone
			if i < len(rules) {
				cfg.Rules[i] = rules[i]
			}
		}
	}
}

// WithLPBound toggles the LP bound and sets its feasibility cutoff.
func WithLPBound(enabled bool, cutoff float64) Option {
	return func(cfg *Config) {
		cfg.LPBoundEnabled = enabled
		cfg.LPBoundCutoff = cutoff
	}
}

// WithCliqueBound toggles the clique-cover bound.
func WithCliqueBound(enabled bool) Option {
	return func(cfg *Config) { cfg.CliqueBoundEnabled = enabled }
}

// WithBranching toggles the v2 branching rule, component-split, and mirror
// branching independently.
func WithBranching(v2, components, mirror bool) Option {
	return func(cfg *Config) {
		cfg.BranchingV2 = v2
		cfg.Components = components
		cfg.Mirror = mirror
	}
}
