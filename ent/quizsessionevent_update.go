// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vocabcards/ent/predicate"
	"github.com/abhisek/vocabcards/ent/quizsessionevent"
)

// QuizSessionEventUpdate is the builder for updating QuizSessionEvent entities.
type QuizSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSessionEventMutation
}

// Where appends a list predicates to the QuizSessionEventUpdate builder.
func (_u *QuizSessionEventUpdate) Where(ps ...predicate.QuizSessionEvent) *QuizSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionEventUpdate) SetSessionID(v string) *QuizSessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableSessionID(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizSessionEventUpdate) SetAction(v string) *QuizSessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableAction(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizSessionEventUpdate) SetTopic(v string) *QuizSessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableTopic(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizSessionEventUpdate) SetLevel(v string) *QuizSessionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableLevel(v *string) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizSessionEventUpdate) SetTotal(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableTotal(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizSessionEventUpdate) AddTotal(v int) *QuizSessionEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSessionEventUpdate) SetScore(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableScore(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSessionEventUpdate) AddScore(v int) *QuizSessionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizSessionEventUpdate) SetPercentage(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillablePercentage(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizSessionEventUpdate) AddPercentage(v int) *QuizSessionEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizSessionEventUpdate) SetDurationSecs(v int) *QuizSessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizSessionEventUpdate) SetNillableDurationSecs(v *int) *QuizSessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizSessionEventUpdate) AddDurationSecs(v int) *QuizSessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_u *QuizSessionEventUpdate) Mutation() *QuizSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizsessionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizsessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsessionevent.Table, quizsessionevent.Columns, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizsessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizsessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizsessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizsessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizsessionevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizsessionevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSessionEventUpdateOne is the builder for updating a single QuizSessionEvent entity.
type QuizSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionEventUpdateOne) SetSessionID(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableSessionID(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizSessionEventUpdateOne) SetAction(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableAction(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizSessionEventUpdateOne) SetTopic(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableTopic(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizSessionEventUpdateOne) SetLevel(v string) *QuizSessionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableLevel(v *string) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizSessionEventUpdateOne) SetTotal(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableTotal(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizSessionEventUpdateOne) AddTotal(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSessionEventUpdateOne) SetScore(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableScore(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSessionEventUpdateOne) AddScore(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizSessionEventUpdateOne) SetPercentage(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillablePercentage(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizSessionEventUpdateOne) AddPercentage(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizSessionEventUpdateOne) SetDurationSecs(v int) *QuizSessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizSessionEventUpdateOne) SetNillableDurationSecs(v *int) *QuizSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizSessionEventUpdateOne) AddDurationSecs(v int) *QuizSessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizSessionEventMutation object of the builder.
func (_u *QuizSessionEventUpdateOne) Mutation() *QuizSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSessionEventUpdate builder.
func (_u *QuizSessionEventUpdateOne) Where(ps ...predicate.QuizSessionEvent) *QuizSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSessionEventUpdateOne) Select(field string, fields ...string) *QuizSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSessionEvent entity.
func (_u *QuizSessionEventUpdateOne) Save(ctx context.Context) (*QuizSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionEventUpdateOne) SaveX(ctx context.Context) *QuizSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizsessionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizsessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizSessionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsessionevent.Table, quizsessionevent.Columns, sqlgraph.NewFieldSpec(quizsessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsessionevent.FieldID)
		for _, f := range fields {
			if !quizsessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizsessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizsessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizsessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizsessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizsessionevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizsessionevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &QuizSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
