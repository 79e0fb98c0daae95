package oops

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDog_NameOnlyLeavesAgeUnset(t *testing.T) {
	d := NewDog("Daisy")

	assert.Equal(t, "Daisy", d.Name)
	assert.Nil(t, d.Age)
	assert.False(t, d.HasAge())
	assert.Equal(t, "None", d.AgeString())
}

func TestNewDog_WithAge(t *testing.T) {
	d := NewDog("Buddy", 3)

	require.NotNil(t, d.Age)
	assert.Equal(t, 3, *d.Age)
	assert.Equal(t, "3", d.AgeString())
}

func TestNewDog_AgeZeroIsSet(t *testing.T) {
	d := NewDog("Pup", 0)
	assert.True(t, d.HasAge())
	assert.Equal(t, "0", d.AgeString())
}

func TestDog_Bark(t *testing.T) {
	assert.Equal(t, "Buddy says woof!", NewDog("Buddy", 3).Bark())
	assert.Equal(t, "Daisy says woof!", NewDog("Daisy").Bark())
	// 与年龄无关
	assert.Equal(t, NewDog("Rex").Bark(), NewDog("Rex", 9).Bark())
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	RunDemo(&out)

	assert.Equal(t, "Buddy\n3\nDaisy\nNone\nBuddy says woof!\nDaisy says woof!\n", out.String())
}
