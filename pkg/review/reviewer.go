// Package review drives an interactive terminal pass over an inferred form:
// every field is prompted with its extracted value as the default and its
// validation rule wired in as the prompt validator, so the session only
// completes once the data tree would pass a full validation run.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Rejishankar/docform/pkg/form"
	"github.com/Rejishankar/docform/pkg/jsonval"
	"github.com/Rejishankar/docform/pkg/rules"
)

// Reviewer walks a display schema and collects edited values.
type Reviewer struct {
	driver PromptDriver
}

// Option configures the reviewer.
type Option func(*Reviewer)

// WithDriver replaces the survey-backed prompt driver, mainly for tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Reviewer) {
		r.driver = driver
	}
}

// New constructs a Reviewer with the survey driver by default.
func New(options ...Option) *Reviewer {
	r := &Reviewer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run prompts through every field of the schema and returns the edited data
// tree. Prompt validators come from the ruleset, so the returned tree
// validates cleanly unless the user aborts first.
func (r *Reviewer) Run(ctx context.Context, schema form.SchemaNode, ruleset rules.Ruleset, data jsonval.Value) (jsonval.Value, error) {
	if ctx == nil {
		return jsonval.Value{}, errors.New("review: context is required")
	}
	return r.editNode(ctx, schema, ruleset.Root, data)
}

func (r *Reviewer) editNode(ctx context.Context, node form.SchemaNode, rule rules.Rule, value jsonval.Value) (jsonval.Value, error) {
	switch node.Type {
	case form.FieldTypeObject:
		return r.editObject(ctx, node, rule, value)
	case form.FieldTypeBoolean:
		return r.editBoolean(ctx, node, value)
	case form.FieldTypeArray:
		return r.editArray(ctx, node, rule, value)
	case form.FieldTypeNumber:
		return r.editNumber(ctx, node, rule, value)
	default:
		return r.editString(ctx, node, rule, value)
	}
}

func (r *Reviewer) editObject(ctx context.Context, node form.SchemaNode, rule rules.Rule, value jsonval.Value) (jsonval.Value, error) {
	if node.Title != "" {
		if err := r.driver.Info(ctx, "-- "+node.Title+" --"); err != nil {
			return jsonval.Value{}, err
		}
	}
	members := make([]jsonval.Member, 0, len(node.Properties))
	for _, prop := range node.Properties {
		current, _ := value.Member(prop.Name)
		childRule, _ := rule.Entry(prop.Name)
		edited, err := r.editNode(ctx, prop.Schema, childRule, current)
		if err != nil {
			return jsonval.Value{}, err
		}
		members = append(members, jsonval.Member{Key: prop.Name, Value: edited})
	}
	return jsonval.Object(members...), nil
}

func (r *Reviewer) editBoolean(ctx context.Context, node form.SchemaNode, value jsonval.Value) (jsonval.Value, error) {
	def := value.Kind() == jsonval.KindBool && value.Bool()
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: node.Title,
		Default: def,
	})
	if err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.Bool(answer), nil
}

func (r *Reviewer) editNumber(ctx context.Context, node form.SchemaNode, rule rules.Rule, value jsonval.Value) (jsonval.Value, error) {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   node.Title,
		Default:   value.Text(),
		Validator: ruleValidator(rule),
	})
	if err != nil {
		return jsonval.Value{}, err
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return jsonval.Null(), nil
	}
	return jsonval.NumberLit(json.Number(trimmed)), nil
}

func (r *Reviewer) editString(ctx context.Context, node form.SchemaNode, rule rules.Rule, value jsonval.Value) (jsonval.Value, error) {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   node.Title,
		Default:   value.Text(),
		Validator: ruleValidator(rule),
	})
	if err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.String(answer), nil
}

// editArray prompts array fields as a comma-separated list; elements stay
// strings, matching the common case the ruleset assumes.
func (r *Reviewer) editArray(ctx context.Context, node form.SchemaNode, rule rules.Rule, value jsonval.Value) (jsonval.Value, error) {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: node.Title,
		Default: joinItems(value),
		Help:    "comma-separated values",
		Validator: func(text string) error {
			if rule.MinItems > 0 && len(splitItems(text)) < rule.MinItems {
				return errors.New("must have at least one entry")
			}
			return nil
		},
	})
	if err != nil {
		return jsonval.Value{}, err
	}
	items := splitItems(answer)
	out := make([]jsonval.Value, 0, len(items))
	for _, item := range items {
		out = append(out, jsonval.String(item))
	}
	return jsonval.Array(out...), nil
}

func ruleValidator(rule rules.Rule) func(string) error {
	return func(text string) error {
		if msgs := rule.CheckText(text); len(msgs) > 0 {
			return errors.New(msgs[0])
		}
		return nil
	}
}

func joinItems(value jsonval.Value) string {
	if value.Kind() != jsonval.KindArray {
		return value.Text()
	}
	parts := make([]string, 0, value.Len())
	for _, item := range value.Items() {
		parts = append(parts, item.Text())
	}
	return strings.Join(parts, ", ")
}

func splitItems(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
