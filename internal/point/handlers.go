package point

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the points resource on r. The create response
// includes created_at only when the backend reported it; the local
// backend stores a timestamp but does not return one.
func RegisterRoutes(r fiber.Router, st Store) {
	r.Post("/points", func(c *fiber.Ctx) error {
		var req struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
			Category  *string  `json:"category"`
			CreatorID *string  `json:"creator_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Latitude == nil || req.Longitude == nil {
			return fiber.NewError(fiber.StatusBadRequest, "latitude and longitude required")
		}
		if req.Category == nil || *req.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "category required")
		}
		if req.CreatorID == nil || *req.CreatorID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "creator_id required")
		}

		created, err := st.Insert(c.Context(), Point{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Category:  *req.Category,
			CreatorID: *req.CreatorID,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		resp := fiber.Map{"id": created.ID}
		if !created.CreatedAt.IsZero() {
			resp["created_at"] = created.CreatedAt
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	})

	r.Get("/points", func(c *fiber.Ctx) error {
		points, err := st.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(points)
	})
}
