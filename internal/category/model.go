package category

type Category struct {
	ID   uint
	Name string

	// TotalProducts is the number of products referencing this category,
	// filled by listing queries.
	TotalProducts int
}
