package post

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the posts resource on r. Required coordinates
// are pointer fields so that 0.0 stays a valid value and only a missing
// key is rejected.
func RegisterRoutes(r fiber.Router, st Store) {
	r.Post("/posts", func(c *fiber.Ctx) error {
		var req struct {
			Name       *string  `json:"name"`
			CurrentLat *float64 `json:"current_lat"`
			CurrentLng *float64 `json:"current_lng"`
			TargetLat  *float64 `json:"target_lat"`
			TargetLng  *float64 `json:"target_lng"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == nil || *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		if req.CurrentLat == nil || req.CurrentLng == nil {
			return fiber.NewError(fiber.StatusBadRequest, "current_lat and current_lng required")
		}

		created, err := st.Insert(c.Context(), Post{
			Name:       *req.Name,
			CurrentLat: *req.CurrentLat,
			CurrentLng: *req.CurrentLng,
			TargetLat:  req.TargetLat,
			TargetLng:  req.TargetLng,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": created.ID})
	})

	r.Get("/posts", func(c *fiber.Ctx) error {
		posts, err := st.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(posts)
	})
}
