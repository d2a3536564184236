package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/configs"
	"github.com/sauravtand/restaurant-management-system/middlewares"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/routes"
	"github.com/sauravtand/restaurant-management-system/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// ข้อมูลร้านอยู่ใน memory ทั้งหมด seed ใหม่ทุกครั้งที่ process เริ่ม
	store := repository.NewStore(configs.SeedUsers(), configs.SeedRestaurants())

	// sqlite เก็บเฉพาะ session ให้ login ค้างอยู่ข้าม restart ได้
	sessionDB, err := configs.OpenSessionDB(cfg.SessionDB)
	if err != nil {
		log.Fatalf("open session db failed: %v", err)
	}

	hub := ws.NewEventHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, store, sessionDB, hub)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
