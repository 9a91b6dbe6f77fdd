package accessscope

import (
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
)

type Entity string

const (
	EntityPatient     Entity = "patient"
	EntityEncounter   Entity = "encounter"
	EntityObservation Entity = "observation"
	EntityDiagnosis   Entity = "diagnosis"
	EntityMedication  Entity = "medication"
	EntityUser        Entity = "user"
)

type Operation string

const (
	OperationRead   Operation = "read"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Decision is the resolver's verdict for one (identity, entity, operation)
// question. When Authorized, Scope is the row filter the repository must
// splice into its query. An unauthorized decision carries no scope.
type Decision struct {
	Authorized bool
	Scope      Predicate
}

// Request carries the inputs of one resolution. TargetPatientID is the
// optional patient the caller is explicitly asking about; for clinicians it
// widens encounter reads across sites (continuity of care).
type Request struct {
	Entity          Entity
	Operation       Operation
	TargetPatientID *int64
}

type ruleFunc func(session *models.Session, req Request) Decision

type ruleKey struct {
	role      string
	entity    Entity
	operation Operation
}

// Resolver answers every row-visibility and write-permission question in the
// service from one dispatch table. It is a pure function of the session and
// the request: no I/O, no clock, no side effects.
type Resolver struct {
	rules map[ruleKey]ruleFunc
}

func NewResolver() *Resolver {
	r := &Resolver{rules: make(map[ruleKey]ruleFunc)}
	r.registerPatientRules()
	r.registerClinicianRules()
	r.registerRecordsClerkRules()
	r.registerFrontDeskRules()
	r.registerAdminRules()
	return r
}

// Resolve returns the decision for the request. An unknown role is an error;
// a known role asking for something outside its rules is simply unauthorized.
func (r *Resolver) Resolve(session *models.Session, req Request) (Decision, error) {
	if session == nil {
		return Decision{}, exceptions.ErrSessionNotFound(nil)
	}
	switch session.Role {
	case constvars.RolePatient, constvars.RoleFrontDesk, constvars.RoleClinician,
		constvars.RoleRecordsClerk, constvars.RoleAdmin:
	default:
		return Decision{}, exceptions.ErrRoleNotAllowed(nil)
	}

	rule, ok := r.rules[ruleKey{role: session.Role, entity: req.Entity, operation: req.Operation}]
	if !ok {
		return Decision{Authorized: false}, nil
	}
	return rule(session, req), nil
}

func (r *Resolver) register(role string, entity Entity, op Operation, fn ruleFunc) {
	r.rules[ruleKey{role: role, entity: entity, operation: op}] = fn
}

var clinicalEntities = []Entity{EntityEncounter, EntityObservation, EntityDiagnosis, EntityMedication}

// Patients read their own chart and nothing else. An account not yet linked
// to a patient row resolves to the empty set, not an error.
func (r *Resolver) registerPatientRules() {
	r.register(constvars.RolePatient, EntityPatient, OperationRead,
		func(s *models.Session, _ Request) Decision {
			if s.PatientID == nil {
				return Decision{Authorized: true, Scope: MatchNone()}
			}
			return Decision{Authorized: true, Scope: Where("p.id = ?", *s.PatientID)}
		})
	for _, entity := range clinicalEntities {
		alias := entityAlias(entity)
		r.register(constvars.RolePatient, entity, OperationRead,
			func(s *models.Session, _ Request) Decision {
				if s.PatientID == nil {
					return Decision{Authorized: true, Scope: MatchNone()}
				}
				return Decision{Authorized: true, Scope: Where(alias+".patient_id = ?", *s.PatientID)}
			})
	}
}

// Clinicians read encounters at their home site or ones they created. Naming
// a target patient widens the read to all of that patient's encounters
// regardless of site. Every clinical write stays bound to encounters they
// created themselves.
func (r *Resolver) registerClinicianRules() {
	encounterReadScope := func(s *models.Session) Predicate {
		bySite := MatchNone()
		if s.SiteID != nil {
			bySite = Where("e.site_id = ?", *s.SiteID)
		}
		return Or(bySite, Where("e.created_by_id = ?", s.UserID))
	}

	r.register(constvars.RoleClinician, EntityPatient, OperationRead,
		func(_ *models.Session, _ Request) Decision {
			return Decision{Authorized: true, Scope: MatchAll()}
		})
	r.register(constvars.RoleClinician, EntityEncounter, OperationRead,
		func(s *models.Session, req Request) Decision {
			if req.TargetPatientID != nil {
				return Decision{Authorized: true, Scope: Where("e.patient_id = ?", *req.TargetPatientID)}
			}
			return Decision{Authorized: true, Scope: encounterReadScope(s)}
		})
	for _, entity := range []Entity{EntityObservation, EntityDiagnosis, EntityMedication} {
		alias := entityAlias(entity)
		r.register(constvars.RoleClinician, entity, OperationRead,
			func(s *models.Session, req Request) Decision {
				if req.TargetPatientID != nil {
					return Decision{Authorized: true, Scope: Where(alias+".patient_id = ?", *req.TargetPatientID)}
				}
				inner := encounterReadScope(s)
				return Decision{Authorized: true, Scope: Where(
					alias+".encounter_id IN (SELECT e.id FROM encounters e WHERE "+inner.clause+")",
					inner.args...)}
			})
	}

	ownership := func(s *models.Session) Predicate {
		return Where("e.created_by_id = ?", s.UserID)
	}
	r.register(constvars.RoleClinician, EntityEncounter, OperationCreate,
		func(_ *models.Session, _ Request) Decision {
			return Decision{Authorized: true, Scope: MatchAll()}
		})
	r.register(constvars.RoleClinician, EntityEncounter, OperationUpdate,
		func(s *models.Session, _ Request) Decision {
			return Decision{Authorized: true, Scope: ownership(s)}
		})
	for _, entity := range []Entity{EntityObservation, EntityDiagnosis, EntityMedication} {
		r.register(constvars.RoleClinician, entity, OperationCreate,
			func(s *models.Session, _ Request) Decision {
				return Decision{Authorized: true, Scope: ownership(s)}
			})
		r.register(constvars.RoleClinician, entity, OperationUpdate,
			func(s *models.Session, _ Request) Decision {
				return Decision{Authorized: true, Scope: ownership(s)}
			})
	}
}

// Records clerks see everything and change nothing.
func (r *Resolver) registerRecordsClerkRules() {
	readAll := func(_ *models.Session, _ Request) Decision {
		return Decision{Authorized: true, Scope: MatchAll()}
	}
	r.register(constvars.RoleRecordsClerk, EntityPatient, OperationRead, readAll)
	for _, entity := range clinicalEntities {
		r.register(constvars.RoleRecordsClerk, entity, OperationRead, readAll)
	}
}

// Front desk works within its home site. Patient search additionally admits
// patients without any encounter yet, so a freshly registered patient does
// not vanish from the desk that created them.
func (r *Resolver) registerFrontDeskRules() {
	siteScope := func(s *models.Session) Predicate {
		if s.SiteID == nil {
			return MatchNone()
		}
		return Where("e.site_id = ?", *s.SiteID)
	}

	r.register(constvars.RoleFrontDesk, EntityPatient, OperationRead,
		func(s *models.Session, _ Request) Decision {
			if s.SiteID == nil {
				return Decision{Authorized: true, Scope: MatchNone()}
			}
			return Decision{Authorized: true, Scope: Or(
				Where("p.id IN (SELECT e.patient_id FROM encounters e WHERE e.site_id = ?)", *s.SiteID),
				Where("NOT EXISTS (SELECT 1 FROM encounters e WHERE e.patient_id = p.id)"),
			)}
		})
	for _, op := range []Operation{OperationCreate, OperationUpdate, OperationDelete} {
		r.register(constvars.RoleFrontDesk, EntityPatient, op,
			func(_ *models.Session, _ Request) Decision {
				return Decision{Authorized: true, Scope: MatchAll()}
			})
	}
	r.register(constvars.RoleFrontDesk, EntityEncounter, OperationRead,
		func(s *models.Session, _ Request) Decision {
			return Decision{Authorized: true, Scope: siteScope(s)}
		})
	for _, entity := range []Entity{EntityObservation, EntityDiagnosis, EntityMedication} {
		alias := entityAlias(entity)
		r.register(constvars.RoleFrontDesk, entity, OperationRead,
			func(s *models.Session, _ Request) Decision {
				if s.SiteID == nil {
					return Decision{Authorized: true, Scope: MatchNone()}
				}
				return Decision{Authorized: true, Scope: Where(
					alias+".encounter_id IN (SELECT e.id FROM encounters e WHERE e.site_id = ?)", *s.SiteID)}
			})
	}
}

// Admins manage accounts. They hold no clinical privileges at all.
func (r *Resolver) registerAdminRules() {
	all := func(_ *models.Session, _ Request) Decision {
		return Decision{Authorized: true, Scope: MatchAll()}
	}
	for _, op := range []Operation{OperationRead, OperationCreate, OperationUpdate, OperationDelete} {
		r.register(constvars.RoleAdmin, EntityUser, op, all)
	}
}

func entityAlias(entity Entity) string {
	switch entity {
	case EntityPatient:
		return "p"
	case EntityEncounter:
		return "e"
	case EntityObservation:
		return "o"
	case EntityDiagnosis:
		return "d"
	case EntityMedication:
		return "m"
	case EntityUser:
		return "u"
	}
	return ""
}
