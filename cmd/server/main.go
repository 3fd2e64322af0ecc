package main

import "autorevenda/internal/app"

// @title           AutoRevenda API
// @version         1.0
// @description     Back office e portal do cliente para revenda de veículos.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
