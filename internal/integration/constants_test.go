package integration_test

const (
	// Identity constants matching what the external identity service would
	// put into the shared session store.
	TestUserId  = 1
	TestStaffId = 2

	// Catalog constants matching testdata/catalog_up.sql.
	TestHallName       = "Main Stage"
	TestHallRows       = 10
	TestHallSeatsInRow = 20

	TestSmallHallName       = "Studio"
	TestSmallHallRows       = 2
	TestSmallHallSeatsInRow = 3

	TestPlayTitle = "Hamlet"
)
