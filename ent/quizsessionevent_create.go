// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vocabcards/ent/quizsessionevent"
)

// QuizSessionEventCreate is the builder for creating a QuizSessionEvent entity.
type QuizSessionEventCreate struct {
	config
	mutation *QuizSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizSessionEventCreate) SetSequence(v int64) *QuizSessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizSessionEventCreate) SetTimestamp(v time.Time) *QuizSessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableTimestamp(v *time.Time) *QuizSessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSessionEventCreate) SetSessionID(v string) *QuizSessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *QuizSessionEventCreate) SetAction(v string) *QuizSessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizSessionEventCreate) SetTopic(v string) *QuizSessionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuizSessionEventCreate) SetLevel(v string) *QuizSessionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizSessionEventCreate) SetTotal(v int) *QuizSessionEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableTotal(v *int) *QuizSessionEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizSessionEventCreate) SetScore(v int) *QuizSessionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableScore(v *int) *QuizSessionEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *QuizSessionEventCreate) SetPercentage(v int) *QuizSessionEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillablePercentage(v *int) *QuizSessionEventCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *QuizSessionEventCreate) SetDurationSecs(v int) *QuizSessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *QuizSessionEventCreate) SetNillableDurationSecs(v *int) *QuizSessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_c *QuizSessionEventCreate) Mutation() *QuizSessionEventMutation {
	return _c.mutation
}

// Save creates the QuizSessionEvent in the database.
func (_c *QuizSessionEventCreate) Save(ctx context.Context) (*QuizSessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionEventCreate) SaveX(ctx context.Context) *QuizSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizsessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := quizsessionevent.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizsessionevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := quizsessionevent.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := quizsessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizSessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizSessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuizSessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := quizsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizSessionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizsessionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "QuizSessionEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := quizsessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizSessionEvent.total"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizSessionEvent.score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "QuizSessionEvent.percentage"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "QuizSessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *QuizSessionEventCreate) sqlSave(ctx context.Context) (*QuizSessionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizSessionEventCreate) createSpec() (*QuizSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsessionevent.Table, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizsessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizsessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(quizsessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizsessionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(quizsessionevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizsessionevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizsessionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(quizsessionevent.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// QuizSessionEventCreateBulk is the builder for creating many QuizSessionEvent entities in bulk.
type QuizSessionEventCreateBulk struct {
	config
	err      error
	builders []*QuizSessionEventCreate
}

// Save creates the QuizSessionEvent entities in the database.
func (_c *QuizSessionEventCreateBulk) Save(ctx context.Context) ([]*QuizSessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizSessionEventCreateBulk) SaveX(ctx context.Context) []*QuizSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
