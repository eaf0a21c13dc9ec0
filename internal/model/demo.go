package model

const (
	demoDate   = "February 26, 2016"
	demoDetail = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."
)

// DemoFeed returns the bundled recipes feed
func DemoFeed() *Feed {
	return NewFeed(
		demoItem("Summer BBQ", "AssortmentOfDessert"),
		demoItem("Birthday gift", "AssortmentOfFood"),
		demoItem("Brunch this weekend?", "AvocadoIceCream"),
		demoItem("Giants game", "HeartCookies"),
		demoItem("Recipe to try", "VeganHempBalls"),
		demoItem("Interview", "VeganPieAbove"),
	)
}

func demoItem(title, image string) FeedItem {
	return FeedItem{
		Title:  title,
		Detail: demoDetail,
		Date:   demoDate,
		Image:  image,
		Height: DefaultRowHeight,
	}
}
