// Package student содержит схему записи студента и её правила проверки.
//
// Пакет определяет:
//
//   - Сущность Student и параметры её создания Input
//   - Вложенные значения: Subject, Address, EmergencyContact
//   - Перечисление Gender и обёртку Secret для пароля
//
// # Создание
//
// Студент создаётся одним вызовом New (литералы Go) или Parse/Decode (JSON).
// Оба пути проходят одинаковые этапы: обязательные поля, правила отдельных
// полей, производные поля (full_name, age), межполевое правило года выпуска.
// Ошибка любого этапа возвращается как *shared.ValidationError с путём поля:
//
//	s, err := student.New(student.Input{
//	    ID:          student.Ptr(1001),
//	    FirstName:   student.Ptr("Jane"),
//	    LastName:    student.Ptr("Smith"),
//	    Email:       student.Ptr("jane.smith@university.edu"),
//	    Password:    student.Ptr(student.NewSecret("SecurePassword123")),
//	    DateOfBirth: student.Ptr(timeutil.NewDate(2000, time.May, 15)),
//	    Gender:      student.Ptr(student.GenderFemale),
//	    Address:     student.Ptr(student.NewAddress("456 University Ave", "College Town", "NY", "54321")),
//	})
//
// # Изменение
//
// Поля закрыты; сеттеры повторяют проверки и при ошибке оставляют запись прежней.
//
// # Сериализация
//
// MarshalJSON выводит ключи в порядке объявления схемы. Пароль всегда
// выводится маской "**********"; исходное значение - только Secret.Reveal.
package student
