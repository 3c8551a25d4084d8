// Package schema declares the five catalog entities as declarative
// descriptors: one CREATE TABLE statement and a list of CREATE INDEX
// statements per entity. The storage operator walks these descriptors
// instead of hard-coding DDL.
package schema

// Entity describes one catalog table.
type Entity struct {
	// Name is the table name.
	Name string

	// CreateDDL is the CREATE TABLE statement for the entity.
	CreateDDL string

	// IndexDDLs are the CREATE INDEX statements run after a bulk load.
	IndexDDLs []string
}

// Entities returns the descriptors for all five catalog tables in
// creation order.
func Entities() []Entity {
	return []Entity{
		{
			Name: "item",
			CreateDDL: `create table if not exists item (
	id       INTEGER NOT NULL PRIMARY KEY,
	serial   STRING NOT NULL,
	price    DECIMAL(4, 2) NOT NULL,
	brandId  INTEGER NOT NULL,
	titleId  INTEGER NOT NULL,
	colorId  INTEGER NOT NULL,
	sizeId   INTEGER NOT NULL
)`,
			IndexDDLs: []string{
				"create index if not exists item_brand_serial on item ( brandId, serial )",
				"create index if not exists item_title_id on item ( titleId )",
				"create index if not exists item_price on item ( price )",
				"create index if not exists item_color_id on item ( colorId )",
				"create index if not exists item_size_id on item ( sizeId )",
				"create index if not exists item_brand_title_price_color_size_serial on item ( titleId, brandId, price, colorId, sizeId, serial )",
				"create index if not exists item_brand_color_size_serial on item ( brandId, colorId, sizeId, serial )",
			},
		},
		{
			Name: "brand",
			CreateDDL: `create table if not exists brand (
	id     INTEGER NOT NULL PRIMARY KEY,
	brand  VARCHAR(255) NOT NULL
)`,
			IndexDDLs: []string{
				"create index if not exists brand_id_brand on brand ( id, brand )",
			},
		},
		{
			Name: "title",
			CreateDDL: `create table if not exists title (
	id     INTEGER NOT NULL PRIMARY KEY,
	title  STRING NOT NULL
)`,
			IndexDDLs: []string{
				"create index if not exists title_id_title on title ( id, title )",
			},
		},
		{
			Name: "color",
			CreateDDL: `create table if not exists color (
	id       INTEGER NOT NULL PRIMARY KEY,
	color    STRING NOT NULL,
	numeric  STRING NOT NULL
)`,
			IndexDDLs: []string{
				"create index if not exists color_id_color on color ( id, color )",
			},
		},
		{
			Name: "size",
			CreateDDL: `create table if not exists size (
	id    INTEGER NOT NULL PRIMARY KEY,
	size  STRING NOT NULL
)`,
			IndexDDLs: []string{
				"create index if not exists size_id_size on size ( id, size )",
			},
		},
	}
}
