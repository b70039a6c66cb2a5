package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReloadGuard_DiscardsStaleCompletion(t *testing.T) {
	g := newReloadGuard()

	s1 := g.begin("u1")
	s2 := g.begin("u1")
	assert.Less(t, s1, s2)

	//後発のリロードが先に完了
	assert.True(t, g.commit("u1", s2))

	//先発の結果は古いので破棄される
	assert.False(t, g.commit("u1", s1))
}

func TestReloadGuard_InOrderCompletion(t *testing.T) {
	g := newReloadGuard()

	s1 := g.begin("u1")
	assert.True(t, g.commit("u1", s1))

	s2 := g.begin("u1")
	assert.True(t, g.commit("u1", s2))
}

func TestReloadGuard_KeysAreIndependent(t *testing.T) {
	g := newReloadGuard()

	a := g.begin("u1")
	b := g.begin("u2")

	assert.True(t, g.commit("u1", a))
	assert.True(t, g.commit("u2", b))
}
