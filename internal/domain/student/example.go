package student

// ExampleJSON - пример документа студента с минимальным набором полей.
const ExampleJSON = `{
  "id": 12345,
  "first_name": "John",
  "last_name": "Doe",
  "email": "john.doe@example.com",
  "password": "secret123",
  "date_of_birth": "2000-01-15",
  "gender": "male",
  "gpa": 3.5,
  "address": {
    "street": "123 Main St",
    "city": "Anytown",
    "state": "CA",
    "zip_code": "12345",
    "country": "USA"
  }
}`
