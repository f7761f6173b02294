package acomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockStack_PushPop(t *testing.T) {
	bs := newBlockStack(4)
	assert.Nil(t, bs.top())

	b := &Block{Indent: 0, Line: 1, Kind: KindIf, Discipline: DisciplineIndent, ScopesToClose: 1}
	assert.True(t, bs.push(b))
	assert.Equal(t, b, bs.top())

	popped := bs.pop()
	assert.Equal(t, b, popped)
	assert.Nil(t, bs.top())
}

func TestBlockStack_CapacityOverflow(t *testing.T) {
	bs := newBlockStack(1)
	assert.True(t, bs.push(&Block{Kind: KindIf}))
	assert.False(t, bs.push(&Block{Kind: KindWhile}))
}

func TestBlockStack_ChainMutatesKindNotDiscipline(t *testing.T) {
	bs := newBlockStack(4)
	bs.push(&Block{Line: 1, Kind: KindIf, Discipline: DisciplineBrace})

	chained := bs.chain(KindElif)
	assert.Equal(t, KindElif, chained.Kind)
	assert.Equal(t, DisciplineBrace, chained.Discipline)

	bs.chain(KindElse)
	assert.Equal(t, KindElse, bs.top().Kind)
	assert.Equal(t, DisciplineBrace, bs.top().Discipline)
}

func TestBlockStack_ChainOnEmptyStackReturnsNil(t *testing.T) {
	bs := newBlockStack(4)
	assert.Nil(t, bs.chain(KindElif))
}

func TestBlockStack_CanPushFunc(t *testing.T) {
	bs := newBlockStack(4)
	assert.True(t, bs.canPushFunc())

	bs.push(&Block{Kind: KindFunc})
	assert.False(t, bs.canPushFunc())
}

func TestBlockStack_InsideFunc(t *testing.T) {
	bs := newBlockStack(4)
	assert.False(t, bs.insideFunc())
	bs.push(&Block{Kind: KindFunc})
	assert.True(t, bs.insideFunc())
}
