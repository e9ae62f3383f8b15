package integration_test

const (
	TestUsername     = "alice"
	TestUserEmail    = "alice@example.com"
	TestUserPassword = "Test123!@#"

	OtherUsername  = "bob"
	OtherUserEmail = "bob@example.com"

	TestMovieTitle       = "Test Movie"
	TestMovieDescription = "A test movie description."
	TestMovieReleaseDate = "2025-05-01"
	TestMovieDuration    = 120

	TestSeatNumber = "A1"
)
