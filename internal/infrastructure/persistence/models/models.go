package models

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&BioModel{},
		&EducationModel{},
		&ExperienceModel{},
		&SkillCategoryModel{},
		&SkillModel{},
		&ProjectCategoryModel{},
		&ProjectModel{},
		&ContactModel{},
		&UserModel{},
	}
}
