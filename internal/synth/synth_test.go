package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"infa2sql/internal/endpoint"
)

func eps(list ...endpoint.Endpoint) []endpoint.Endpoint {
	return list
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name          string
		sources       []endpoint.Endpoint
		targetColumns []string
		selectList    string
		from          string
		common        []string
		missing       []string
		note          string
	}{
		{
			name:          "single source with target order",
			sources:       eps(endpoint.New("SRC", "name", "id")),
			targetColumns: []string{"id", "name"},
			selectList:    "id, name",
			from:          "FROM SRC",
		},
		{
			name:          "single source null fills missing target column",
			sources:       eps(endpoint.New("SRC", "id", "name")),
			targetColumns: []string{"id", "name", "amount"},
			selectList:    "id, name, NULL AS amount",
			from:          "FROM SRC",
			missing:       []string{"amount"},
		},
		{
			name:          "single source matches case-insensitively",
			sources:       eps(endpoint.New("SRC", "ID")),
			targetColumns: []string{"id"},
			selectList:    "id",
			from:          "FROM SRC",
		},
		{
			name:       "single source without target columns",
			sources:    eps(endpoint.New("SRC", "id", "name")),
			selectList: "id, name",
			from:       "FROM SRC",
		},
		{
			name:       "single source without any fields",
			sources:    eps(endpoint.New("SRC")),
			selectList: "*",
			from:       "FROM SRC",
		},
		{
			name: "shared column uses USING join",
			sources: eps(
				endpoint.New("SRC_A", "id", "name"),
				endpoint.New("SRC_B", "id", "amount"),
			),
			targetColumns: []string{"id", "name", "amount"},
			selectList:    "id, SRC_A.name, SRC_B.amount",
			from:          "FROM SRC_A JOIN SRC_B USING (id)",
			common:        []string{"id"},
		},
		{
			name: "no shared column falls back to CROSS JOIN",
			sources: eps(
				endpoint.New("A", "a_id", "val_a"),
				endpoint.New("B", "b_id", "val_b"),
			),
			targetColumns: []string{"a_id", "b_id"},
			selectList:    "A.a_id, B.b_id",
			from:          "FROM A CROSS JOIN B",
			common:        []string{},
			note:          CrossJoinNote,
		},
		{
			name: "three sources without target columns project the union",
			sources: eps(
				endpoint.New("A", "id", "k", "x"),
				endpoint.New("B", "K", "id", "y"),
				endpoint.New("C", "id", "k"),
			),
			selectList: "id, k, A.x, B.y",
			from:       "FROM A JOIN B USING (id, k) JOIN C USING (id, k)",
			common:     []string{"id", "k"},
		},
		{
			name: "common columns keep the first source spelling",
			sources: eps(
				endpoint.New("A", "ID", "Name"),
				endpoint.New("B", "id", "amount"),
			),
			targetColumns: []string{"id", "name", "total"},
			selectList:    "id, A.name, NULL AS total",
			from:          "FROM A JOIN B USING (ID)",
			common:        []string{"ID"},
			missing:       []string{"total"},
		},
		{
			name: "first owning source wins",
			sources: eps(
				endpoint.New("A", "id", "code"),
				endpoint.New("B", "id", "code2"),
				endpoint.New("C", "id", "code"),
			),
			targetColumns: []string{"code"},
			selectList:    "A.code",
			from:          "FROM A JOIN B USING (id) JOIN C USING (id)",
			common:        []string{"id"},
		},
		{
			name: "fieldless sources cross join and select everything",
			sources: eps(
				endpoint.New("A"),
				endpoint.New("B"),
			),
			selectList: "*",
			from:       "FROM A CROSS JOIN B",
			common:     []string{},
			note:       CrossJoinNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Synthesize(tt.sources, tt.targetColumns)

			assert.Equal(t, tt.selectList, sel.SelectList())
			assert.Equal(t, tt.from, sel.Join.From)
			assert.Equal(t, tt.note, sel.Join.Note)
			assert.Equal(t, tt.missing, sel.Missing)

			if tt.common != nil {
				assert.Equal(t, tt.common, sel.Join.Common)
			}
		})
	}
}

func TestSynthesize_NoSources(t *testing.T) {
	sel := Synthesize(nil, []string{"id"})
	assert.Empty(t, sel.Columns)
	assert.Empty(t, sel.Join.From)
}

func TestSynthesize_Deterministic(t *testing.T) {
	sources := eps(
		endpoint.New("A", "id", "x", "y"),
		endpoint.New("B", "id", "z"),
	)

	first := Synthesize(sources, nil)
	for range 10 {
		assert.Equal(t, first, Synthesize(sources, nil))
	}
}

func TestCommonColumns(t *testing.T) {
	assert.Empty(t, CommonColumns(eps(endpoint.New("A", "id"))))
	assert.Equal(t, []string{"b", "a"}, CommonColumns(eps(
		endpoint.New("A", "b", "a", "c"),
		endpoint.New("B", "A", "B"),
	)))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "amount"}, Union(eps(
		endpoint.New("A", "id", "name"),
		endpoint.New("B", "ID", "amount"),
	)))
}

func TestIntersect(t *testing.T) {
	target := endpoint.New("TGT", "id", "name", "extra")
	source := endpoint.New("SRC", "NAME", "id", "other")

	assert.Equal(t, []string{"id", "name"}, Intersect(target, source))
	assert.Equal(t, []string{}, Intersect(target, endpoint.New("EMPTY")))
}
