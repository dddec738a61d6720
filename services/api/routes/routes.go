// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/handlers"
)

// SetupRoutes wires every endpoint onto the router. The facade is the
// single shared instance constructed at process start.
func SetupRoutes(router *gin.Engine, f *facade.Facade) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", handlers.CreateUser(f))
			users.GET("", handlers.ListUsers(f))
			users.GET("/:id", handlers.GetUser(f))
			users.PUT("/:id", handlers.UpdateUser(f))
		}
		amenities := v1.Group("/amenities")
		{
			amenities.POST("", handlers.CreateAmenity(f))
			amenities.GET("", handlers.ListAmenities(f))
			amenities.GET("/:id", handlers.GetAmenity(f))
			amenities.PUT("/:id", handlers.UpdateAmenity(f))
		}
		places := v1.Group("/places")
		{
			places.POST("", handlers.CreatePlace(f))
			places.GET("", handlers.ListPlaces(f))
			places.GET("/:id", handlers.GetPlace(f))
			places.PUT("/:id", handlers.UpdatePlace(f))
		}
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", handlers.CreateReview(f))
			reviews.GET("", handlers.ListReviews(f))
			reviews.GET("/:id", handlers.GetReview(f))
			reviews.PUT("/:id", handlers.UpdateReview(f))
			reviews.DELETE("/:id", handlers.DeleteReview(f))
		}
	}

	// Generic object namespace shared with the console tooling.
	objects := router.Group("/objects")
	{
		objects.POST("/:kind", handlers.CreateObject(f))
		objects.GET("/:kind", handlers.ListObjects(f))
		objects.GET("/:kind/:id", handlers.GetObject(f))
		objects.PUT("/:kind/:id", handlers.UpdateObject(f))
		objects.DELETE("/:kind/:id", handlers.DeleteObject(f))
	}
}
