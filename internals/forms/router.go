// file: internals/forms/router.go
package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	messagemodel "tutorku_backend/internals/features/messages/model"
	paymentmodel "tutorku_backend/internals/features/payments/model"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	scheduleservice "tutorku_backend/internals/features/schedule/service"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teachermodel "tutorku_backend/internals/features/teachers/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/store"
)

/* =======================================================
   Router — rute submission ke mutasi store / lifecycle

   add vs update ditentukan EditingID. Untuk kind payment dan
   schedule, router (bukan store) yang me-resolve ulang nama
   denormalisasi sebelum persist — enrich-on-write.

   Target update yang tidak ada = no-op (Applied false), bukan
   error, supaya semantik mutasi idempoten terjaga.
   ======================================================= */

type Result struct {
	Kind    Kind
	ID      string
	Created bool
	Applied bool
}

type Router struct {
	store    *store.Store
	lessons  *scheduleservice.LessonService
	validate *validator.Validate
}

func NewRouter(st *store.Store, lessons *scheduleservice.LessonService, v *validator.Validate) *Router {
	return &Router{store: st, lessons: lessons, validate: v}
}

func (r *Router) Submit(sub Submission) (Result, error) {
	form, err := Parse(sub)
	if err != nil {
		return Result{}, err
	}

	switch f := form.(type) {
	case StudentForm:
		return r.submitStudent(f)
	case SubjectForm:
		return r.submitSubject(f)
	case PaymentForm:
		return r.submitPayment(f)
	case MessageForm:
		return r.submitMessage(f)
	case ScheduleForm:
		return r.submitSchedule(f)
	case TeacherForm:
		return r.submitTeacher(f)
	default:
		return Result{}, fmt.Errorf("unhandled form kind %q", form.FormKind())
	}
}

/* =======================================================
   Per-kind handlers
   ======================================================= */

func (r *Router) submitStudent(f StudentForm) (Result, error) {
	if f.Create != nil {
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model studentmodel.StudentModel
		f.Create.ApplyToModel(&model)
		created := r.store.AddStudent(model)
		return Result{Kind: KindStudent, ID: created.StudentID, Created: true, Applied: true}, nil
	}

	if err := f.Patch.Validate(r.validate); err != nil {
		return Result{}, helper.FromValidator(err)
	}
	applied := r.store.UpdateStudent(f.EditingID, func(m *studentmodel.StudentModel) {
		f.Patch.ApplyPatch(m)
	})
	return Result{Kind: KindStudent, ID: f.EditingID, Applied: applied}, nil
}

func (r *Router) submitSubject(f SubjectForm) (Result, error) {
	if f.Create != nil {
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model subjectmodel.SubjectModel
		f.Create.ApplyToModel(&model)
		created := r.store.AddSubject(model)
		return Result{Kind: KindSubject, ID: created.SubjectID, Created: true, Applied: true}, nil
	}

	if err := f.Patch.Validate(r.validate); err != nil {
		return Result{}, helper.FromValidator(err)
	}
	applied := r.store.UpdateSubject(f.EditingID, func(m *subjectmodel.SubjectModel) {
		f.Patch.ApplyPatch(m)
	})
	return Result{Kind: KindSubject, ID: f.EditingID, Applied: applied}, nil
}

func (r *Router) submitPayment(f PaymentForm) (Result, error) {
	if f.Create != nil {
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model paymentmodel.PaymentModel
		f.Create.ApplyToModel(&model)
		model.StudentName, model.SubjectName = r.store.ResolveNames(model.StudentID, model.SubjectID)
		created := r.store.AddPayment(model)
		return Result{Kind: KindPayment, ID: created.PaymentID, Created: true, Applied: true}, nil
	}

	if err := f.Patch.Validate(r.validate); err != nil {
		return Result{}, helper.FromValidator(err)
	}
	existing, ok := r.store.GetPaymentByID(f.EditingID)
	if !ok {
		return Result{Kind: KindPayment, ID: f.EditingID}, nil
	}
	// Patch di salinan dulu supaya nama bisa di-resolve di luar lock store.
	f.Patch.ApplyPatch(&existing)
	existing.StudentName, existing.SubjectName = r.store.ResolveNames(existing.StudentID, existing.SubjectID)
	applied := r.store.UpdatePayment(f.EditingID, func(m *paymentmodel.PaymentModel) {
		*m = existing
	})
	return Result{Kind: KindPayment, ID: f.EditingID, Applied: applied}, nil
}

func (r *Router) submitMessage(f MessageForm) (Result, error) {
	if f.Create != nil {
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model messagemodel.MessageModel
		f.Create.ApplyToModel(&model)
		created := r.store.AddMessage(model)
		return Result{Kind: KindMessage, ID: created.MessageID, Created: true, Applied: true}, nil
	}

	if err := f.Patch.Validate(r.validate); err != nil {
		return Result{}, helper.FromValidator(err)
	}
	applied := r.store.UpdateMessage(f.EditingID, func(m *messagemodel.MessageModel) {
		f.Patch.ApplyPatch(m)
	})
	return Result{Kind: KindMessage, ID: f.EditingID, Applied: applied}, nil
}

func (r *Router) submitTeacher(f TeacherForm) (Result, error) {
	if f.Create != nil {
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model teachermodel.TeacherModel
		f.Create.ApplyToModel(&model)
		created := r.store.AddTeacher(model)
		return Result{Kind: KindTeacher, ID: created.TeacherID, Created: true, Applied: true}, nil
	}

	if err := f.Patch.Validate(r.validate); err != nil {
		return Result{}, helper.FromValidator(err)
	}
	applied := r.store.UpdateTeacher(f.EditingID, func(m *teachermodel.TeacherModel) {
		f.Patch.ApplyPatch(m)
	})
	return Result{Kind: KindTeacher, ID: f.EditingID, Applied: applied}, nil
}

func (r *Router) submitSchedule(f ScheduleForm) (Result, error) {
	switch {
	case f.Book != nil:
		slot, err := r.lessons.Book(f.Book)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindSchedule, ID: slot.ScheduleSlotID, Created: true, Applied: true}, nil

	case f.Create != nil:
		if err := f.Create.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		var model schedulemodel.ScheduleSlotModel
		if err := f.Create.ApplyToModel(&model); err != nil {
			return Result{}, helper.NewValidationError(err.Error(), nil)
		}
		model.StudentName, model.SubjectName = r.store.ResolveNames(model.StudentID, model.SubjectID)
		created := r.store.AddScheduleSlot(model)
		return Result{Kind: KindSchedule, ID: created.ScheduleSlotID, Created: true, Applied: true}, nil

	default:
		if err := f.Patch.Validate(r.validate); err != nil {
			return Result{}, helper.FromValidator(err)
		}
		existing, ok := r.store.GetScheduleSlotByID(f.EditingID)
		if !ok {
			return Result{Kind: KindSchedule, ID: f.EditingID}, nil
		}
		if err := f.Patch.ApplyPatch(&existing); err != nil {
			return Result{}, helper.NewValidationError(err.Error(), nil)
		}
		existing.StudentName, existing.SubjectName = r.store.ResolveNames(existing.StudentID, existing.SubjectID)
		applied := r.store.UpdateScheduleSlot(f.EditingID, func(m *schedulemodel.ScheduleSlotModel) {
			*m = existing
		})
		return Result{Kind: KindSchedule, ID: f.EditingID, Applied: applied}, nil
	}
}
