package vcconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors returned by Load.
var (
	// ErrUnknownKey indicates a config-file line named a key this solver
	// does not recognize.
	ErrUnknownKey = errors.New("vcconfig: unknown key")

	// ErrMalformedLine indicates a non-blank, non-comment line that was
	// not of the form "KEY VALUE".
	ErrMalformedLine = errors.New("vcconfig: malformed line")

	// ErrBadValue indicates a key was recognized but its value could not
	// be parsed as the type that key expects.
	ErrBadValue = errors.New("vcconfig: bad value")

	// ErrBadRuleSlot indicates a CONFIG_RULE line referenced a slot index
	// outside [1, numRuleSlots] or an unrecognized rule tag.
	ErrBadRuleSlot = errors.New("vcconfig: bad rule slot")
)

// Load reads a "KEY VALUE" configuration file: blank
// lines and lines beginning with '#' are ignored; every other line sets one
// field of cfg. Load starts from Default() and applies overrides on top, so
// a file only needs to mention the keys it wants to change.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("vcconfig: line %d %q: %w", lineNo, line, ErrMalformedLine)
		}
		key, rest := fields[0], fields[1:]
		if err := applyKey(cfg, key, rest); err != nil {
			return nil, fmt.Errorf("vcconfig: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyKey(cfg *Config, key string, rest []string) error {
	switch key {
	case "CONFIG_BRANCHING_V2":
		return setBool(&cfg.BranchingV2, rest)
	case "CONFIG_COMPONENTS":
		return setBool(&cfg.Components, rest)
	case "CONFIG_MIRROR":
		return setBool(&cfg.Mirror, rest)
	case "CONFIG_LP_BOUND":
		return setBool(&cfg.LPBoundEnabled, rest)
	case "CONFIG_CLIQUE_BOUND":
		return setBool(&cfg.CliqueBoundEnabled, rest)
	case "LP_BOUND_CUTOFF":
		return setFloat(&cfg.LPBoundCutoff, rest)
	case "CONFIG_RULE":
		return setRule(cfg, rest)
	case "CN_CHECK1_ENABLED":
		return setBool(&cfg.CNCheck1Enabled, rest)
	case "CN_CHECK1_MIN_DEG":
		return setInt(&cfg.CNCheck1MinDeg, rest)
	case "CN_CHECK1_MAX_DEG":
		return setInt(&cfg.CNCheck1MaxDeg, rest)
	case "CN_CHECK2_ENABLED":
		return setBool(&cfg.CNCheck2Enabled, rest)
	case "CN_CHECK2_CUTOFF":
		return setFloat(&cfg.CNCheck2Cutoff, rest)
	case "CN_CHECK2_RELAX_N":
		return setInt(&cfg.CNCheck2RelaxN, rest)
	case "CN_CHECK2_LARGE_N":
		return setInt(&cfg.CNCheck2LargeN, rest)
	case "CN_CHECK2_LARGE_K":
		return setInt(&cfg.CNCheck2LargeK, rest)
	case "DEG3_CUTOFF1":
		return setInt(&cfg.Deg3Cutoff1, rest)
	case "DEG3_CUTOFF2":
		return setInt(&cfg.Deg3Cutoff2, rest)
	case "CLIQUE_BOUND_ITER":
		return setInt(&cfg.CliqueBoundIter, rest)
	case "CLIQUE_BOUND_ASCEND":
		return setBool(&cfg.CliqueBoundAscend, rest)
	case "CLIQUE_BOUND_MIXED":
		return setBool(&cfg.CliqueBoundMixed, rest)
	case "CLIQUE_BOUND_SHUFFLE_DIST":
		return setFloat(&cfg.CliqueBoundShuffleDist, rest)
	case "CLIQUE_BOUND_SHUFFLE_PCT":
		return setInt(&cfg.CliqueBoundShufflePct, rest)
	case "UNCONF_CUTOFF":
		return setInt(&cfg.UnconfCutoff, rest)
	case "UNCONF_MAX_DEG":
		return setInt(&cfg.UnconfMaxDeg, rest)
	default:
		return fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
}

func setBool(dst *bool, rest []string) error {
	v, err := strconv.ParseBool(rest[0])
	if err != nil {
		return fmt.Errorf("%q: %w", rest[0], ErrBadValue)
	}
	*dst = v
	return nil
}

func setInt(dst *int, rest []string) error {
	v, err := strconv.Atoi(rest[0])
	if err != nil {
		return fmt.Errorf("%q: %w", rest[0], ErrBadValue)
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, rest []string) error {
	v, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("%q: %w", rest[0], ErrBadValue)
	}
	*dst = v
	return nil
}

var validRuleTags = map[string]RuleTag{
	string(RuleNone): RuleNone, string(RuleDeg1): RuleDeg1, string(RuleDeg2): RuleDeg2,
	string(RuleDeg3): RuleDeg3, string(RuleDom): RuleDom, string(RuleUnconf): RuleUnconf,
	string(RuleCN): RuleCN, string(RuleLP): RuleLP, string(RuleDeg12): RuleDeg12,
	string(RuleUnconfCombo): RuleUnconfCombo, string(RuleUndeg3): RuleUndeg3,
}

// setRule implements "CONFIG_RULE <i> <tag>": rest is [i, tag]. Tags are
// accepted with or without the "OPT_" prefix, so both "OPT_DEG_1" and
// "DEG_1" select the same rule.
func setRule(cfg *Config, rest []string) error {
	if len(rest) < 2 {
		return fmt.Errorf("CONFIG_RULE: %w", ErrMalformedLine)
	}
	i, err := strconv.Atoi(rest[0])
	if err != nil || i < 1 || i > numRuleSlots {
		return fmt.Errorf("CONFIG_RULE slot %q: %w", rest[0], ErrBadRuleSlot)
	}
	tag, ok := validRuleTags[strings.TrimPrefix(rest[1], "OPT_")]
	if !ok {
		return fmt.Errorf("CONFIG_RULE tag %q: %w", rest[1], ErrBadRuleSlot)
	}
	cfg.Rules[i-1] = tag
	return nil
}

// Render writes cfg back out in the same "KEY VALUE" format Load accepts,
// one key per line, in declaration order. Round-tripping Render through
// Load reproduces an equal Config; this exists to let callers debug which
// effective settings a run used, since the 16-slot rule schedule is
// order-sensitive and easy to misconfigure silently.
func Render(cfg *Config, w io.Writer) error {
	lines := []string{
		fmt.Sprintf("CONFIG_BRANCHING_V2 %t", cfg.BranchingV2),
		fmt.Sprintf("CONFIG_COMPONENTS %t", cfg.Components),
		fmt.Sprintf("CONFIG_MIRROR %t", cfg.Mirror),
		fmt.Sprintf("CONFIG_LP_BOUND %t", cfg.LPBoundEnabled),
		fmt.Sprintf("CONFIG_CLIQUE_BOUND %t", cfg.CliqueBoundEnabled),
		fmt.Sprintf("LP_BOUND_CUTOFF %g", cfg.LPBoundCutoff),
	}
	for i, tag := range cfg.Rules {
		lines = append(lines, fmt.Sprintf("CONFIG_RULE %d %s", i+1, tag))
	}
	lines = append(lines,
		fmt.Sprintf("CN_CHECK1_ENABLED %t", cfg.CNCheck1Enabled),
		fmt.Sprintf("CN_CHECK1_MIN_DEG %d", cfg.CNCheck1MinDeg),
		fmt.Sprintf("CN_CHECK1_MAX_DEG %d", cfg.CNCheck1MaxDeg),
		fmt.Sprintf("CN_CHECK2_ENABLED %t", cfg.CNCheck2Enabled),
		fmt.Sprintf("CN_CHECK2_CUTOFF %g", cfg.CNCheck2Cutoff),
		fmt.Sprintf("CN_CHECK2_RELAX_N %d", cfg.CNCheck2RelaxN),
		fmt.Sprintf("CN_CHECK2_LARGE_N %d", cfg.CNCheck2LargeN),
		fmt.Sprintf("CN_CHECK2_LARGE_K %d", cfg.CNCheck2LargeK),
		fmt.Sprintf("DEG3_CUTOFF1 %d", cfg.Deg3Cutoff1),
		fmt.Sprintf("DEG3_CUTOFF2 %d", cfg.Deg3Cutoff2),
		fmt.Sprintf("CLIQUE_BOUND_ITER %d", cfg.CliqueBoundIter),
		fmt.Sprintf("CLIQUE_BOUND_ASCEND %t", cfg.CliqueBoundAscend),
		fmt.Sprintf("CLIQUE_BOUND_MIXED %t", cfg.CliqueBoundMixed),
		fmt.Sprintf("CLIQUE_BOUND_SHUFFLE_DIST %g", cfg.CliqueBoundShuffleDist),
		fmt.Sprintf("CLIQUE_BOUND_SHUFFLE_PCT %d", cfg.CliqueBoundShufflePct),
		fmt.Sprintf("UNCONF_CUTOFF %d", cfg.UnconfCutoff),
		fmt.Sprintf("UNCONF_MAX_DEG %d", cfg.UnconfMaxDeg),
	)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
