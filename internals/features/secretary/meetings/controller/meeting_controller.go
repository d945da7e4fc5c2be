package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cyberwarrior_backend/internals/features/secretary/meetings/dto"
	"cyberwarrior_backend/internals/features/secretary/meetings/model"
	helper "cyberwarrior_backend/internals/helpers"
)

type MeetingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMeetingController(db *gorm.DB) *MeetingController {
	return &MeetingController{DB: db, Validate: validator.New()}
}

// nextMeetingSrNo continues the institution's serial sequence from the
// highest number ever assigned. Deleted meetings keep their number, so a
// delete never causes the next insert to duplicate a live serial.
func nextMeetingSrNo(maxAssigned int) int {
	if maxAssigned < 0 {
		maxAssigned = 0
	}
	return maxAssigned + 1
}

// Create appends a meeting to the institution's log. The serial comes from
// the unscoped maximum inside the transaction; the unique index on
// (institution, sr_no) rejects the loser of a concurrent race.
func (ctrl *MeetingController) Create(c *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	date, err := time.Parse("2006-01-02", req.MeetingDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	institutionID, secretaryID, err := sessionIDs(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	var created model.MeetingModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxSrNo int
		if err := tx.Unscoped().Model(&model.MeetingModel{}).
			Where("meeting_institution_id = ?", institutionID).
			Select("COALESCE(MAX(meeting_sr_no), 0)").
			Scan(&maxSrNo).Error; err != nil {
			return err
		}

		created = model.MeetingModel{
			MeetingSrNo:               nextMeetingSrNo(maxSrNo),
			MeetingNo:                 req.MeetingNo,
			MeetingDate:               date,
			MeetingAgenda:             pq.StringArray(req.Agenda),
			MeetingConclusion:         req.Conclusion,
			MeetingRemark:             req.Remark,
			MeetingAttendancePhotoURL: req.AttendancePhotoURL,
			MeetingGeoTagPhotoURL:     req.GeoTagPhotoURL,
			MeetingInstitutionID:      institutionID,
			MeetingSecretaryID:        secretaryID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		log.Printf("[MEETING] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save meeting")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meeting added successfully!", created)
}

// GetAll returns the institution's meeting log in serial order.
func (ctrl *MeetingController) GetAll(c *fiber.Ctx) error {
	institutionID, _, err := sessionIDs(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	var meetings []model.MeetingModel
	if err := ctrl.DB.
		Where("meeting_institution_id = ?", institutionID).
		Order("meeting_sr_no asc").
		Find(&meetings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch meetings")
	}
	return helper.Success(c, "OK", meetings)
}

// Delete soft-removes a meeting from the institution's log.
func (ctrl *MeetingController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	institutionID, _, err := sessionIDs(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	res := ctrl.DB.
		Where("meeting_id = ? AND meeting_institution_id = ?", id, institutionID).
		Delete(&model.MeetingModel{})
	if res.Error != nil {
		log.Printf("[MEETING] delete failed: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete meeting")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Meeting not found")
	}
	return helper.Success(c, "Meeting deleted successfully!", fiber.Map{"meeting_id": id})
}

// SaveRoster upserts the club profile and its office-bearer roster. Rows are
// keyed by (institution, role) so re-saving the screen updates names and
// attendance flags in place.
func (ctrl *MeetingController) SaveRoster(c *fiber.Ctx) error {
	var req dto.SaveClubRosterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	institutionID, _, err := sessionIDs(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		profile := model.ClubProfileModel{
			ProfileClubName:       req.ClubName,
			ProfileAvailableWeeks: req.AvailableWeeks,
			ProfileInstitutionID:  institutionID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_institution_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"profile_club_name", "profile_available_weeks"}),
		}).Create(&profile).Error; err != nil {
			return err
		}

		for _, m := range req.Members {
			member := model.ClubMemberModel{
				MemberRole:          m.Role,
				MemberName:          m.Name,
				MemberCM1:           m.CM1,
				MemberCM2:           m.CM2,
				MemberCM3:           m.CM3,
				MemberInstitutionID: institutionID,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "member_institution_id"}, {Name: "member_role"}},
				DoUpdates: clause.AssignmentColumns([]string{"member_name", "member_cm1", "member_cm2", "member_cm3"}),
			}).Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[MEETING] roster save failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save club roster")
	}

	return helper.Success(c, "Meeting log saved successfully!", nil)
}

// GetRoster returns the club profile and roster for the meeting-log screen.
func (ctrl *MeetingController) GetRoster(c *fiber.Ctx) error {
	institutionID, _, err := sessionIDs(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	var profile model.ClubProfileModel
	if err := ctrl.DB.
		First(&profile, "profile_institution_id = ?", institutionID).Error; err != nil && err != gorm.ErrRecordNotFound {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch club roster")
	}

	var members []model.ClubMemberModel
	if err := ctrl.DB.
		Where("member_institution_id = ?", institutionID).
		Order("member_created_at asc").
		Find(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch club roster")
	}

	return helper.Success(c, "OK", fiber.Map{
		"profile": profile,
		"members": members,
	})
}

func sessionIDs(c *fiber.Ctx) (institutionID, secretaryID uuid.UUID, err error) {
	rawInst, _ := c.Locals("institution_id").(string)
	institutionID, err = uuid.Parse(rawInst)
	if err != nil {
		return
	}
	rawUser, _ := c.Locals("user_id").(string)
	secretaryID, err = uuid.Parse(rawUser)
	return
}
