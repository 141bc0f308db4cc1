package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Accounts() AccountRepository
	Restaurants() RestaurantRepository
	Orders() OrderRepository
	Requests() RequestRepository
}
