package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/query"
)

func TestBuildDetailAmbiguous(t *testing.T) {
	// A blank price means the selection came from a consolidated row:
	// the title constrains as a prefix.
	sel := catalog.Item{Brand: "NIKE", Title: "RUN TEE", Serial: "%10%"}
	q := query.BuildDetail(sel)

	assert.Contains(t, q.SQL,
		"where brand = ? and title like ? and serial like ?")
	assert.Contains(t, q.SQL,
		"order by brand, title, price, color, sizeId, serial")
	assert.Equal(t, []string{"NIKE", "RUN TEE%", "%10%"}, q.Args)
}

func TestBuildDetailAmbiguousNoBrand(t *testing.T) {
	sel := catalog.Item{Title: "RUN TEE"}
	q := query.BuildDetail(sel)

	assert.Contains(t, q.SQL, "where title like ?")
	assert.NotContains(t, q.SQL, "brand = ?")
	assert.Equal(t, []string{"RUN TEE%"}, q.Args)
}

func TestBuildDetailExact(t *testing.T) {
	sel := catalog.Item{
		Brand: "NIKE",
		Title: "RUN TEE (NIKE)",
		Price: "25.00",
		Color: "RED",
	}
	q := query.BuildDetail(sel)

	assert.Contains(t, q.SQL,
		"where brand = ? and color = ? and title = ? and price = ?")
	assert.Contains(t, q.SQL, "order by brand, colorId, sizeId, serial")
	assert.Equal(t,
		[]string{"NIKE", "RED", "RUN TEE (NIKE)", "25.00"}, q.Args)
}
