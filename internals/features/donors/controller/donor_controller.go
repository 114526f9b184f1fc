package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/dto"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/service"
	helper "github.com/Tafsirchy/VitalFlow-BackendNew/internals/helpers"
)

var validate = validator.New()

type DonorController struct {
	DB        *gorm.DB
	Directory *service.Directory
	Guard     *service.Guard
}

func NewDonorController(db *gorm.DB) *DonorController {
	store := service.NewDonorStore(db)
	return &DonorController{
		DB:        db,
		Directory: service.NewDirectory(store),
		Guard:     service.NewGuard(store),
	}
}

// POST /donors — public self-registration.
func (ctrl *DonorController) Register(c *fiber.Ctx) error {
	var body dto.RegisterDonorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	donor, err := ctrl.Directory.Register(c.UserContext(), &body)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donor registered", donor)
}

// GET /donors — authenticated listing, paginated.
func (ctrl *DonorController) List(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	params, err := helper.ParsePageParams(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	donors, total, err := ctrl.Directory.List(c.UserContext(), params.Limit(), params.Offset())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Donors fetched", fiber.Map{
		"donors": donors,
		"meta":   helper.BuildMeta(total, params),
	})
}

// PATCH /donors/status — authenticated; both fields mandatory.
func (ctrl *DonorController) UpdateStatus(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	var body dto.UpdateDonorStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Email == "" || body.Status == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing email or status")
	}

	if err := ctrl.Directory.UpdateStatus(c.UserContext(), body.Email, body.Status); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Donor status updated", nil)
}

// PATCH /donors/role — admin only.
func (ctrl *DonorController) UpdateRole(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAdmin(c.UserContext(), caller); err != nil {
		return helper.FromAppError(c, err)
	}

	var body dto.UpdateDonorRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Directory.UpdateRole(c.UserContext(), body.Email, body.Role); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Donor role updated", nil)
}

// GET /donors/:email — public profile/role lookup.
func (ctrl *DonorController) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	donor, err := ctrl.Directory.LookupByEmail(c.UserContext(), email)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Donor fetched", donor)
}

// PUT /donors/profile — the caller edits their own record only.
func (ctrl *DonorController) UpdateProfile(c *fiber.Ctx) error {
	caller := helper.VerifiedEmail(c)
	if err := ctrl.Guard.RequireAuthenticated(caller); err != nil {
		return helper.FromAppError(c, err)
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Directory.UpdateProfile(c.UserContext(), caller, &body); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Profile updated", nil)
}
