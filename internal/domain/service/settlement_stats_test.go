package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Atlas-App/internal/domain/model"
)

func makeSettlements(n int) []model.Settlement {
	settlements := make([]model.Settlement, n)
	for i := range settlements {
		settlements[i].Name = "Settlement"
		settlements[i].Type = "Castle"
	}
	return settlements
}

func TestAssignPopulations(t *testing.T) {
	t.Run("同じ件数なら毎回同じ値になる", func(t *testing.T) {
		first := makeSettlements(20)
		second := makeSettlements(20)

		AssignPopulations(first)
		AssignPopulations(second)

		for i := range first {
			assert.Equal(t, first[i].Population, second[i].Population)
		}
	})

	t.Run("合成値は100から5000の範囲内", func(t *testing.T) {
		settlements := makeSettlements(200)
		AssignPopulations(settlements)

		for _, s := range settlements {
			assert.GreaterOrEqual(t, s.Population, 100)
			assert.LessOrEqual(t, s.Population, 5000)
		}
	})

	t.Run("空の集合では何も起きない", func(t *testing.T) {
		var settlements []model.Settlement
		AssignPopulations(settlements)
		assert.Empty(t, settlements)
	})
}

func TestAssignRadii(t *testing.T) {
	t.Run("最小人口は半径5、最大人口は半径15になる", func(t *testing.T) {
		settlements := makeSettlements(2)
		settlements[0].Population = 100
		settlements[1].Population = 5000

		AssignRadii(settlements)

		assert.InDelta(t, 5.0, settlements[0].Radius, 1e-9)
		assert.InDelta(t, 15.0, settlements[1].Radius, 1e-9)
	})

	t.Run("中間の人口は線形に補間される", func(t *testing.T) {
		settlements := makeSettlements(3)
		settlements[0].Population = 100
		settlements[1].Population = 2550
		settlements[2].Population = 5000

		AssignRadii(settlements)

		assert.InDelta(t, 10.0, settlements[1].Radius, 1e-9)
	})

	t.Run("全拠点の人口が等しい場合は半径10に固定", func(t *testing.T) {
		settlements := makeSettlements(5)
		for i := range settlements {
			settlements[i].Population = 1234
		}

		AssignRadii(settlements)

		for _, s := range settlements {
			assert.Equal(t, 10.0, s.Radius)
		}
	})

	t.Run("空の集合ではエラーにならない", func(t *testing.T) {
		var settlements []model.Settlement
		AssignRadii(settlements)
		assert.Empty(t, settlements)
	})
}
