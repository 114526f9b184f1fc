package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	donorService "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/service"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/dto"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/service"
	helper "github.com/Tafsirchy/VitalFlow-BackendNew/internals/helpers"
)

var validate = validator.New()

const recentOwnLimit = 3

type RequestController struct {
	DB        *gorm.DB
	Lifecycle *service.LifecycleEngine
	Query     *service.QueryEngine
	Guard     *donorService.Guard
}

func NewRequestController(db *gorm.DB) *RequestController {
	requestStore := service.NewRequestStore(db)
	donorStore := donorService.NewDonorStore(db)
	directory := donorService.NewDirectory(donorStore)

	return &RequestController{
		DB:        db,
		Lifecycle: service.NewLifecycleEngine(requestStore, directory),
		Query:     service.NewQueryEngine(requestStore),
		Guard:     donorService.NewGuard(donorStore),
	}
}

// parseRequestID is the single place a path identifier becomes a typed value.
func parseRequestID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.InvalidArgument("malformed request id")
	}
	return id, nil
}

// POST /requests — authenticated create; owner is the verified caller.
func (ctrl *RequestController) Create(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	var body dto.CreateRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	req, err := ctrl.Lifecycle.Create(c.UserContext(), caller, &body)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Request created", req)
}

// GET /requests/mine — own requests, paginated.
func (ctrl *RequestController) ListOwn(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	params, err := helper.ParsePageParams(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	reqs, total, err := ctrl.Query.OwnRequests(c.UserContext(), caller, params.Limit(), params.Offset())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Requests fetched", fiber.Map{
		"requests":     reqs,
		"totalRequest": total,
		"meta":         helper.BuildMeta(total, params),
	})
}

// GET /requests/mine/recent — newest few own requests for the dashboard.
func (ctrl *RequestController) RecentOwn(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	reqs, err := ctrl.Query.RecentOwn(c.UserContext(), caller, recentOwnLimit)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Recent requests fetched", reqs)
}

// PATCH /requests/:id/accept — claim a pending request.
func (ctrl *RequestController) Accept(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	id, err := parseRequestID(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	req, err := ctrl.Lifecycle.Accept(c.UserContext(), id, caller)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Request accepted", req)
}

// PATCH /requests/:id/status — owner or Admin/Volunteer.
func (ctrl *RequestController) UpdateStatus(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	id, err := parseRequestID(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	elevated, err := ctrl.Guard.HasElevatedRole(c.UserContext(), caller)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	if err := ctrl.Lifecycle.SetStatus(c.UserContext(), id, body.Status, caller, elevated); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Request status updated", nil)
}

// DELETE /requests/:id — owner only.
func (ctrl *RequestController) DeleteOwn(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	id, err := parseRequestID(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	if err := ctrl.Lifecycle.DeleteOwn(c.UserContext(), id, caller); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Request deleted", nil)
}

// GET /admin/requests — Admin/Volunteer view, paginated + filtered.
func (ctrl *RequestController) ListAll(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAdminOrVolunteer(c.UserContext(), caller); err != nil {
		return helper.FromAppError(c, err)
	}

	params, err := helper.ParsePageParams(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	f := service.Filter{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
		Status:     c.Query("status"),
	}
	reqs, total, err := ctrl.Query.AllRequests(c.UserContext(), f, params.Limit(), params.Offset())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Requests fetched", fiber.Map{
		"requests":     reqs,
		"totalRequest": total,
		"meta":         helper.BuildMeta(total, params),
	})
}

// DELETE /admin/requests/:id — Admin removes any request.
func (ctrl *RequestController) DeleteAny(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAdmin(c.UserContext(), caller); err != nil {
		return helper.FromAppError(c, err)
	}

	id, err := parseRequestID(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	if err := ctrl.Lifecycle.DeleteAny(c.UserContext(), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Request deleted", nil)
}

// GET /requests/urgent — public, at most 4 pending, newest first.
func (ctrl *RequestController) Urgent(c *fiber.Ctx) error {
	reqs, err := ctrl.Query.Urgent(c.UserContext(), c.Query("bloodGroup"))
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Urgent requests fetched", reqs)
}

// GET /requests/search — public filtered search.
func (ctrl *RequestController) Search(c *fiber.Ctx) error {
	reqs, err := ctrl.Query.Search(
		c.UserContext(),
		c.Query("bloodGroup"),
		c.Query("district"),
		c.Query("upazila"),
	)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Requests fetched", reqs)
}

// GET /requests/:id — public request detail.
func (ctrl *RequestController) GetByID(c *fiber.Ctx) error {
	id, err := parseRequestID(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	req, err := ctrl.Lifecycle.Requests.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Request fetched", req)
}
