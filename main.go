package main

import (
	"fmt"
	"log"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/configs"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/dispatch"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/middlewares"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/routes"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// ตัวส่ง event ปิดบิลออกไปข้างนอก (ชีต/analytics)
	var dispatcher dispatch.Dispatcher = dispatch.LogDispatcher{}
	if cfg.AMQPURL != "" {
		amqpDisp, err := dispatch.DialAMQP(cfg.AMQPURL)
		if err != nil {
			// ไม่ fatal — ปิดบิลได้ปกติ แค่ event ลง log แทน
			log.Printf("amqp dial failed, falling back to log dispatcher: %v", err)
		} else {
			dispatcher = amqpDisp
			defer amqpDisp.Close()
		}
	}

	// hub จอครัว
	hub := ws.NewKitchenHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub, dispatcher)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 POS backend running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
