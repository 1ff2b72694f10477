package authority

import (
	"fmt"
	"strings"
)

// Rule is an access predicate evaluated against a principal's authorities.
// Rules are immutable and safe for concurrent use.
type Rule interface {
	Evaluate(authorities Set) bool
	String() string
}

type permitAll struct{}

// PermitAll allows every request, authenticated or not.
func PermitAll() Rule { return permitAll{} }

func (permitAll) Evaluate(Set) bool { return true }
func (permitAll) String() string    { return "permitAll()" }

type authenticated struct{}

// Authenticated allows any resolved principal.
func Authenticated() Rule { return authenticated{} }

func (authenticated) Evaluate(s Set) bool { return s != nil }
func (authenticated) String() string      { return "isAuthenticated()" }

type hasAuthority struct {
	authority Authority
}

// HasAuthority requires a to be granted.
func HasAuthority(a Authority) Rule { return hasAuthority{authority: a} }

// HasRole requires ROLE_<name>.
func HasRole(name string) Rule { return HasAuthority(Role(name)) }

// HasScope requires SCOPE_<name>.
func HasScope(name string) Rule { return HasAuthority(ScopeOf(name)) }

func (r hasAuthority) Evaluate(s Set) bool { return s.Has(r.authority) }
func (r hasAuthority) String() string      { return fmt.Sprintf("hasAuthority('%s')", r.authority) }

type allOf struct {
	rules []Rule
}

// All requires every rule to pass; evaluation stops at the first failure.
// All() with no rules passes.
func All(rules ...Rule) Rule { return allOf{rules: rules} }

func (r allOf) Evaluate(s Set) bool {
	for _, rule := range r.rules {
		if !rule.Evaluate(s) {
			return false
		}
	}
	return true
}

func (r allOf) String() string {
	if len(r.rules) == 0 {
		return "permitAll()"
	}
	return join(r.rules, " and ")
}

type anyOf struct {
	rules []Rule
}

// Any requires at least one rule to pass; evaluation stops at the first success.
// Any() with no rules fails.
func Any(rules ...Rule) Rule { return anyOf{rules: rules} }

func (r anyOf) Evaluate(s Set) bool {
	for _, rule := range r.rules {
		if rule.Evaluate(s) {
			return true
		}
	}
	return false
}

func (r anyOf) String() string {
	if len(r.rules) == 0 {
		return "denyAll()"
	}
	return join(r.rules, " or ")
}

type not struct {
	rule Rule
}

// Not inverts rule.
func Not(rule Rule) Rule { return not{rule: rule} }

func (r not) Evaluate(s Set) bool { return !r.rule.Evaluate(s) }
func (r not) String() string      { return "not " + group(r.rule) }

func join(rules []Rule, op string) string {
	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		parts = append(parts, group(rule))
	}
	return strings.Join(parts, op)
}

// group parenthesises composite operands so the rendered expression keeps its shape.
func group(rule Rule) string {
	switch v := rule.(type) {
	case allOf:
		if len(v.rules) > 1 {
			return "(" + v.String() + ")"
		}
	case anyOf:
		if len(v.rules) > 1 {
			return "(" + v.String() + ")"
		}
	}
	return rule.String()
}
