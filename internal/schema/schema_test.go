package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestValidate_Project(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.Validate(Project, []byte(`{"title":"Neon","tags":["React"],"imageUrl":""}`)))

	err := v.Validate(Project, []byte(`{"description":"no title"}`))
	require.ErrorIs(t, err, ErrInvalid)

	err = v.Validate(Project, []byte(`{"title":"Bad tags","tags":"React"}`))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_SkillLevelUnbounded(t *testing.T) {
	v := newValidator(t)
	require.NoError(t, v.Validate(Skill, []byte(`{"name":"Overclocking","level":150,"color":"bg-red-500"}`)))
	require.ErrorIs(t, v.Validate(Skill, []byte(`{"name":"Half","level":"50"}`)), ErrInvalid)
}

func TestValidate_ExperienceSide(t *testing.T) {
	v := newValidator(t)
	require.NoError(t, v.Validate(Experience, []byte(`{"role":"Lead","side":"right"}`)))
	require.ErrorIs(t, v.Validate(Experience, []byte(`{"role":"Lead","side":"middle"}`)), ErrInvalid)
}

func TestValidate_Message(t *testing.T) {
	v := newValidator(t)
	require.NoError(t, v.Validate(Message, []byte(`{"codename":"Spidey","email":"peter@bugle.com","content":"hi"}`)))

	err := v.Validate(Message, []byte(`{"codename":"Spidey","email":"not-an-email","content":"hi"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Problems)
}

func TestValidate_MalformedJSON(t *testing.T) {
	v := newValidator(t)
	require.ErrorIs(t, v.Validate(Chat, []byte(`{"message":`)), ErrInvalid)
}

func TestValidate_UnknownSchema(t *testing.T) {
	v := newValidator(t)
	err := v.Validate("villain", []byte(`{}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalid)
}
