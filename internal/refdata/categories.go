package refdata

// categoryTable is the fixed vendor category set. Slugs are derived
// from the names at load time so renames cannot drift from their URLs.
var categoryTable = []Category{
	{Name: "Wedding Venue", Description: "Find the perfect wedding venue for your special day. Browse beautiful ceremony and reception spaces."},
	{Name: "Wedding Catering", Description: "Discover exceptional wedding caterers who will create an unforgettable dining experience."},
	{Name: "Wedding Planner", Description: "Connect with experienced wedding planners who will bring your vision to life."},
	{Name: "Wedding Photographer", Description: "Capture your special moments with professional wedding photographers."},
	{Name: "Wedding Videographer", Description: "Document your wedding day with cinematic wedding videos."},
	{Name: "Florist", Description: "Create stunning floral arrangements for your ceremony and reception."},
	{Name: "Entertainment", Description: "Book amazing DJs and bands for your wedding celebration."},
	{Name: "Officiant", Description: "Find the perfect officiant to perform your wedding ceremony."},
	{Name: "Wedding Attire", Description: "Find your dream wedding dress and perfect tuxedo rentals."},
	{Name: "Beauty Services", Description: "Look your best with professional hair and makeup services."},
	{Name: "Wedding Bakery", Description: "Order your perfect wedding cake and delicious desserts."},
	{Name: "Stationery Design", Description: "Create beautiful invitations and wedding stationery."},
	{Name: "Wedding Rentals", Description: "Find everything you need to style your wedding."},
	{Name: "Transportation", Description: "Book elegant transportation for your wedding day."},
	{Name: "Jeweler", Description: "Find the perfect wedding rings and jewelry."},
	{Name: "Decor Services", Description: "Transform your venue with professional wedding décor."},
	{Name: "Bar Services", Description: "Professional bartending and beverage services."},
	{Name: "Invitations", Description: "Design and order your wedding invitations and paper goods."},
	{Name: "Photo Booth", Description: "Add fun photo booth entertainment to your reception."},
	{Name: "Lighting Services", Description: "Create the perfect ambiance with professional lighting."},
	{Name: "Wedding Insurance", Description: "Protect your special day with wedding insurance."},
	{Name: "Dance Lessons", Description: "Prepare for your first dance with professional lessons."},
	{Name: "Hotel Blocks", Description: "Arrange accommodations for your wedding guests."},
	{Name: "Travel Services", Description: "Plan your honeymoon and guest travel arrangements."},
	{Name: "Wedding Favors", Description: "Find unique wedding favors and gifts for your guests."},
}
