package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N3moAhead/household/internal/family"
	"github.com/N3moAhead/household/internal/person"
)

func TestPersonLookup(t *testing.T) {
	d := New()
	ted := person.New("Ted", "Neward", 45)
	d.AddPerson(ted)

	assert.Same(t, ted, d.PersonByID(ted.ID))
	assert.Nil(t, d.PersonByID("missing"))
	assert.Equal(t, "Ted Neward", d.Name(ted.ID))
	assert.Equal(t, "Unknown", d.Name("missing"))
}

func TestMarry(t *testing.T) {
	d := New()
	ted := person.New("Ted", "Neward", 45)
	charlotte := person.New("Charlotte", "Neward", 45)
	mike := person.New("Mike", "Neward", 2)

	f, err := d.Marry(ted, charlotte)
	require.NoError(t, err)
	require.Len(t, d.Families, 1)
	require.True(t, f.HaveChild(mike))

	_, err = d.Marry(ted, person.New("Other", "Person", 40))
	assert.ErrorIs(t, err, family.ErrAlreadyMarried)
	assert.Len(t, d.Families, 1)

	assert.Equal(t, []*family.Family{f}, d.FamiliesOf(mike))
	assert.Empty(t, d.FamiliesOf(person.New("No", "Body", 1)))
}
