package taxonomy

import "github.com/hejijunhao/triage/internal/model"

// FixFor returns the canned remediation snippet for an error kind. The
// templates are static markdown keyed purely by kind; the monitored
// application is a Django service, so the snippets are Python.
func FixFor(kind model.Kind) string {
	switch kind {
	case model.KindDatabase:
		return databaseFix
	case model.KindAuthentication:
		return authFix
	case model.KindValidation:
		return validationFix
	case model.KindServer:
		return serverFix
	case model.KindPerformance:
		return performanceFix
	}
	return genericFix
}

const databaseFix = `# Database Error Fix

## Suggested Solution:
1. Check database connection settings
2. Verify model constraints and relationships
3. Add proper error handling
4. Consider a database migration if the schema changed

` + "```python" + `
from django.db import transaction, IntegrityError

try:
    with transaction.atomic():
        # Your database operation here
        pass
except IntegrityError as e:
    logger.error(f"Database integrity error: {e}")
` + "```" + `
`

const authFix = `# Authentication Error Fix

## Suggested Solution:
1. Check user permissions and roles
2. Verify authentication middleware
3. Update login/logout views
4. Review session configuration

` + "```python" + `
from django.contrib.auth.decorators import login_required

@login_required
def protected_view(request):
    # Your view logic here
    pass
` + "```" + `
`

const validationFix = `# Validation Error Fix

## Suggested Solution:
1. Add proper form validation
2. Check model field constraints
3. Implement client-side validation
4. Add user-friendly error messages

` + "```python" + `
from django import forms

class YourForm(forms.Form):
    def clean_field_name(self):
        data = self.cleaned_data['field_name']
        if not data:
            raise forms.ValidationError("This field is required")
        return data
` + "```" + `
`

const serverFix = `# Server Error Fix

## Suggested Solution:
1. Add proper exception handling
2. Check for None values and missing attributes
3. Add logging for debugging
4. Implement graceful error responses

` + "```python" + `
def your_view(request):
    try:
        # Your view logic here
        pass
    except AttributeError as e:
        logger.error(f"Attribute error in view: {e}")
        return JsonResponse({'error': 'Internal server error'}, status=500)
` + "```" + `
`

const performanceFix = `# Performance Issue Fix

## Suggested Solution:
1. Add database query optimization
2. Implement caching
3. Use select_related/prefetch_related
4. Add database indexes

` + "```python" + `
from django.core.cache import cache

queryset = Model.objects.select_related('related_field')

def get_cached_data(key):
    data = cache.get(key)
    if data is None:
        data = expensive_operation()
        cache.set(key, data, 300)
    return data
` + "```" + `
`

const genericFix = `# Error Fix

## Suggested Solution:
1. Review the error message and traceback
2. Add error handling around the failing operation
3. Add logging for debugging
`
